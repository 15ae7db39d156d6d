package evaluate

import (
	"fmt"

	"github.com/martinszuc/watermarklab/attack"
)

// Result is one row of a robustness run: which codec faced which attack on
// which channel, the four metrics, and the derived ratings. Results are
// created once by NewResult and never mutated.
type Result struct {
	Attack  attack.Kind
	Codec   string
	Channel string
	// Params describes the attack parameters and, where relevant, the
	// extraction path that produced the recovered bitmap.
	Params string

	BER  float64
	NC   float64
	PSNR float64
	WNR  float64

	Quality    QualityRating
	Robustness RobustnessRating
}

// NewResult derives the ratings for a finished evaluation.
func NewResult(kind attack.Kind, class attack.Class, codec, channel, params string, ber, nc, psnr, wnr float64) Result {
	return Result{
		Attack:     kind,
		Codec:      codec,
		Channel:    channel,
		Params:     params,
		BER:        ber,
		NC:         nc,
		PSNR:       psnr,
		WNR:        wnr,
		Quality:    QualityFromBER(ber),
		Robustness: RobustnessFromBER(ber, class),
	}
}

func (r Result) String() string {
	return fmt.Sprintf("%-14s %-18s %-2s %-22s BER=%.4f NC=%+.3f PSNR=%6.2f WNR=%6.2f %-9s %s",
		r.Attack, r.Codec, r.Channel, r.Params, r.BER, r.NC, r.PSNR, r.WNR, r.Quality, r.Robustness)
}
