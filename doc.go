// Package nescore scores a hypothesis named-entity annotation against
// a reference annotation: Slot Error Rate, precision/recall/F-measure
// per tag and overall, and inter-annotator agreement (S, Pi, Kappa).
//
// The scoring pipeline is organized under these subpackages:
//
//	tokenizer/  — extracts tag/marker events from annotated text
//	entity/     — the Entity/Frontier data model shared by the pipeline
//	refine/     — whitespace-tightens entity boundaries
//	textalign/  — reconciles reference/hypothesis whitespace drift
//	segment/    — builds the boundary-frontier segment graph
//	costmodel/  — the pluggable miss/substitution cost contract
//	align/      — the segment-by-segment alignment search
//	result/     — assembles per-segment deltas into one alignment
//	score/      — SER, precision/recall/F-measure, IAG coefficients
//	report/     — renders scores as the CLI's summary/detail/IAG text
//	runner/     — wires the above into a single Score call
//	config/     — loads an optional YAML cost-table override
//	cmd/nescore/ — the command-line entry point
//
// A minimal scoring run:
//
//	res, err := runner.Score(runner.Config{RefPath: "ref.txt", HypPath: "hyp.txt"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Summary(os.Stdout, res.Counts, res.CountRef, res.CountHyp, res.Tags)
package nescore
