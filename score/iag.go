package score

// IAG holds the inter-annotator agreement coefficients (spec §8.2,
// grounded on show_iag), as computed by ComputeIAG. ComputeIAG's
// expectedCount argument is the assumed total population of possible
// entities in the document (the "-i" CLI argument); its open argument
// selects the annotator-agreement convention with no confusions (the
// "-o" flag), under which a substitution counts as two independent
// misses instead of one partial match.
type IAG struct {
	TotalEntities   float64
	VoidOverlapCorr float64
	TagTypes        int

	S, Pi, Kappa, FMeasure float64
}

// ComputeIAG derives S/Pi/Kappa/F-measure from c, given the whole
// corpus's reference and hypothesis entity counts, the assumed
// document population expectedCount, and whether to use the open
// (no-confusion) convention.
func ComputeIAG(c Counts, countRef, countHyp, expectedCount int, open bool) IAG {
	var voidHyp, voidRef, rt float64
	if open {
		voidHyp = float64(countRef - c.Correct)
		voidRef = float64(countHyp - c.Correct)
		rt = float64(c.Correct) + voidHyp + voidRef
	} else {
		voidHyp = float64(countRef - c.Correct - c.Subst)
		voidRef = float64(countHyp - c.Correct - c.Subst)
		rt = float64(c.Correct+c.Subst) + voidHyp + voidRef
	}

	ovc := float64(expectedCount) - rt
	if ovc < 0 {
		ovc = 0
	}

	correct := float64(c.Correct)

	var a0 float64
	if ovc != 0 {
		a0 = (1 + correct/ovc) / (1 + rt/ovc)
	} else {
		a0 = correct / rt
	}

	tc := len(c.TagHypCount)
	aeS := 1 / float64(tc+1)
	rS := (a0 - aeS) / (1 - aeS)

	sigmaPi := (voidHyp + voidRef) * (voidHyp + voidRef)
	sigmaKappa := voidHyp * voidRef
	for i := 0; i < tc; i++ {
		cpi := float64(c.TagHypCount[i] + c.TagRefCount[i])
		sigmaPi += cpi * cpi
		sigmaKappa += float64(c.TagHypCount[i]) * float64(c.TagRefCount[i])
	}

	var rPi, rKappa float64
	if ovc != 0 {
		rPi = (8*correct - 4*(rt-correct) + (4*correct*rt-sigmaPi)/ovc) / (8*correct + (4*rt*rt-sigmaPi)/ovc)
		rKappa = (2*correct + (correct*rt-sigmaKappa)/ovc) / (correct + rt + (rt*rt-sigmaKappa)/ovc)
	} else {
		rPi = (4*correct*rt - sigmaPi) / (4*rt*rt - sigmaPi)
		rKappa = (correct*rt - sigmaKappa) / (rt*rt - sigmaKappa)
	}

	rFM := 2 * correct / float64(countRef+countHyp)

	return IAG{
		TotalEntities:   rt,
		VoidOverlapCorr: ovc,
		TagTypes:        tc,
		S:               rS,
		Pi:              rPi,
		Kappa:           rKappa,
		FMeasure:        rFM,
	}
}
