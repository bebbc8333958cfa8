package service

import (
	"math"

	"healthcare-optimizer/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ComputeOperationsMetrics derives staffing and bed metrics for one hour of
// patient arrivals. Inputs are validated first; numDoctors and numBeds are
// never zero once validation passes.
func ComputeOperationsMetrics(input domain.OperationsInput) (domain.OperationsOutput, error) {
	if err := ValidateOperations(input); err != nil {
		return domain.OperationsOutput{}, err
	}

	patientsPerDoctor := float64(input.PatientsPerHour) / float64(input.NumDoctors)
	consult := float64(input.ConsultMinutes)

	doctorUtilization := math.Min(MaxUtilizationPct, patientsPerDoctor*consult/MinutesPerHour*100)
	waitingTime := math.Max(0, patientsPerDoctor*consult-MinutesPerHour)
	bedUtilization := math.Min(MaxUtilizationPct, float64(input.PatientsPerHour)/float64(input.NumBeds)*100)
	throughput := float64(input.PatientsPerHour * input.Shifts)

	return domain.OperationsOutput{
		PatientsPerDoctor:    patientsPerDoctor,
		DoctorUtilizationPct: doctorUtilization,
		WaitingTimeMin:       waitingTime,
		BedUtilizationPct:    bedUtilization,
		Throughput:           throughput,
		DoctorAdvisory:       doctorAdvisory(doctorUtilization),
		BedAdvisory:          bedAdvisory(bedUtilization),
	}, nil
}

func doctorAdvisory(utilizationPct float64) domain.Advisory {
	if utilizationPct > DoctorUtilizationWarnPct {
		return domain.Advisory{Warning: true, Message: msgDoctorsOverutilized}
	}
	return domain.Advisory{Message: msgDoctorsOptimal}
}

func bedAdvisory(utilizationPct float64) domain.Advisory {
	if utilizationPct > BedUtilizationWarnPct {
		return domain.Advisory{Warning: true, Message: msgBedsOverflow}
	}
	return domain.Advisory{Message: msgBedsHealthy}
}

// ComputeROI returns the percentage gain or loss of an investment over the
// given number of years of constant annual savings.
func ComputeROI(input domain.ROIInput) (domain.ROIResult, error) {
	if err := ValidateROI(input); err != nil {
		return domain.ROIResult{}, err
	}

	gain := input.AnnualSavings*float64(input.Years) - input.Investment
	roi := gain / input.Investment * 100

	class := ClassifyROI(roi)
	return domain.ROIResult{
		ROIPct:         roi,
		Classification: class,
		Message:        roiMessage(class),
	}, nil
}

// ClassifyROI buckets an ROI percentage: above 50 is excellent, (0, 50] is
// moderate and anything else is negative.
func ClassifyROI(roiPct float64) domain.ROIClass {
	switch {
	case roiPct > ROIExcellentPct:
		return domain.ROIExcellent
	case roiPct > 0:
		return domain.ROIModerate
	default:
		return domain.ROINegative
	}
}

func roiMessage(class domain.ROIClass) string {
	switch class {
	case domain.ROIExcellent:
		return msgROIExcellent
	case domain.ROIModerate:
		return msgROIModerate
	default:
		return msgROINegative
	}
}

// ComputeSixSigma estimates DPMO and the sigma level from defects observed
// per 1,000 patients, assuming a fixed number of opportunities per patient.
func ComputeSixSigma(input domain.SixSigmaInput) (domain.SixSigmaResult, error) {
	if err := ValidateSixSigma(input); err != nil {
		return domain.SixSigmaResult{}, err
	}

	opportunities := PatientsPerSample * OpportunitiesPerPatient
	dpmo := float64(input.DefectsPer1000) / float64(opportunities) * 1_000_000
	sigma := SigmaLevel(dpmo)

	class := ClassifySigma(sigma)
	return domain.SixSigmaResult{
		Opportunities:  opportunities,
		DPMO:           dpmo,
		SigmaLevel:     sigma,
		Classification: class,
		Message:        sigmaMessage(class),
	}, nil
}

// SigmaLevel converts DPMO to a sigma level. Zero defects is a perfect
// score and never reaches the logarithm.
func SigmaLevel(dpmo float64) float64 {
	if dpmo <= 0 {
		return MaxSigmaLevel
	}
	return MaxSigmaLevel - math.Log10(dpmo/SixSigmaDPMO)
}

func ClassifySigma(sigma float64) domain.SigmaClass {
	switch {
	case sigma >= WorldClassSigma:
		return domain.SigmaWorldClass
	case sigma >= GoodSigma:
		return domain.SigmaGood
	case sigma >= ModerateSigma:
		return domain.SigmaModerate
	default:
		return domain.SigmaPoor
	}
}

func sigmaMessage(class domain.SigmaClass) string {
	switch class {
	case domain.SigmaWorldClass:
		return msgSigmaWorldClass
	case domain.SigmaGood:
		return msgSigmaGood
	case domain.SigmaModerate:
		return msgSigmaModerate
	default:
		return msgSigmaPoor
	}
}
