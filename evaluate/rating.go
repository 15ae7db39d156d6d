package evaluate

import "github.com/martinszuc/watermarklab/attack"

// QualityRating grades watermark recovery from the bit-error rate alone.
type QualityRating string

const (
	QualityExcellent QualityRating = "Excellent"
	QualityVeryGood  QualityRating = "Very Good"
	QualityGood      QualityRating = "Good"
	QualityFair      QualityRating = "Fair"
	QualityPoor      QualityRating = "Poor"
	QualityFailed    QualityRating = "Failed"
)

// QualityFromBER maps a bit-error rate onto the quality ladder.
func QualityFromBER(ber float64) QualityRating {
	switch {
	case ber < 0.01:
		return QualityExcellent
	case ber < 0.05:
		return QualityVeryGood
	case ber < 0.10:
		return QualityGood
	case ber < 0.20:
		return QualityFair
	case ber < 0.40:
		return QualityPoor
	}
	return QualityFailed
}

// RobustnessRating grades survival against a specific attack class, whose
// tolerable BER differs: heavy geometric attacks are judged more leniently
// than compression.
type RobustnessRating string

const (
	RobustnessHigh     RobustnessRating = "High"
	RobustnessGood     RobustnessRating = "Good"
	RobustnessModerate RobustnessRating = "Moderate"
	RobustnessLow      RobustnessRating = "Low"
)

// ClassThreshold is the full BER budget for an attack class.
func ClassThreshold(class attack.Class) float64 {
	switch class {
	case attack.ClassCompression:
		return 0.15
	case attack.ClassRotation:
		return 0.30
	case attack.ClassCropping:
		return 0.25
	case attack.ClassNoise:
		return 0.22
	case attack.ClassFiltering:
		return 0.18
	}
	return 0.20
}

// RobustnessFromBER compares the bit-error rate against the quarter, half
// and full threshold of the attack class.
func RobustnessFromBER(ber float64, class attack.Class) RobustnessRating {
	t := ClassThreshold(class)
	switch {
	case ber <= t/4:
		return RobustnessHigh
	case ber <= t/2:
		return RobustnessGood
	case ber <= t:
		return RobustnessModerate
	}
	return RobustnessLow
}
