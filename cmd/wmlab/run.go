package main

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	watermarklab "github.com/martinszuc/watermarklab"
	"github.com/martinszuc/watermarklab/attack"
	"github.com/martinszuc/watermarklab/evaluate"
)

func newRunCmd() *cobra.Command {
	var batteryPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a robustness battery from a YAML description",
		RunE: func(cmd *cobra.Command, args []string) error {
			battery, err := loadBattery(batteryPath)
			if err != nil {
				return err
			}
			results, err := runBattery(battery)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Println(r)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&batteryPath, "battery", "b", "battery.yaml", "battery description file")
	return cmd
}

func newAttacksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attacks",
		Short: "list the registered attacks with their defaults",
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range attack.All() {
				fmt.Printf("%-14s class=%-11s defaults: %s\n", d.Kind, d.Class, d.Describe(d.Defaults))
			}
		},
	}
}

func runBattery(battery *Battery) ([]evaluate.Result, error) {
	host, err := battery.hostImage()
	if err != nil {
		return nil, fmt.Errorf("load host: %w", err)
	}
	wm, err := battery.watermark()
	if err != nil {
		return nil, fmt.Errorf("load watermark: %w", err)
	}

	var (
		mu      sync.Mutex
		results []evaluate.Result
	)
	for _, cc := range battery.Codecs {
		codec, err := cc.build()
		if err != nil {
			return nil, err
		}
		marker, err := watermarklab.NewMarker(codec, watermarklab.WithChannel(cc.channel()))
		if err != nil {
			return nil, err
		}
		marked, side, err := marker.Embed(host, wm)
		if err != nil {
			return nil, fmt.Errorf("%s embed: %w", codec.Name(), err)
		}
		psnr, _ := evaluate.PSNR(host, marked)
		wnr, _ := evaluate.WNR(host, marked)
		log.Info().
			Str("codec", codec.Name()).
			Str("channel", marker.Channel().String()).
			Float64("psnr", psnr).
			Float64("wnr", wnr).
			Msg("embedded")

		var wg sync.WaitGroup
		for _, ac := range battery.Attacks {
			def, ok := attack.Lookup(ac.Kind)
			if !ok {
				return nil, fmt.Errorf("unknown attack kind %q", ac.Kind)
			}
			wg.Add(1)
			go func(def attack.Definition, params attack.Params) {
				defer wg.Done()
				r := runOne(marker, def, params, marked, wm, side, psnr, wnr)
				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}(def, mergeParams(def.Defaults, ac.Params))
		}
		wg.Wait()
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Codec != results[j].Codec {
			return results[i].Codec < results[j].Codec
		}
		return results[i].Attack < results[j].Attack
	})
	return results, nil
}

func runOne(marker *watermarklab.Marker, def attack.Definition, params attack.Params,
	marked image.Image, wm watermarklab.Bitmap, side *watermarklab.SideChannel,
	psnr, wnr float64) evaluate.Result {

	attacked := def.Apply(marked, params)
	desc := def.Describe(params)
	if dwt, ok := marker.Codec().(*watermarklab.DWTBandCodec); ok {
		desc += " path=" + dwt.ExtractPath(side)
	}

	extracted, err := marker.Extract(attacked, wm.W, wm.H, side)
	ber := 1.0
	nc := 0.0
	if err != nil {
		log.Warn().Err(err).
			Str("codec", marker.Codec().Name()).
			Str("attack", string(def.Kind)).
			Msg("extraction failed, scoring worst case")
	} else {
		ber, _ = evaluate.BER(wm, extracted)
		nc, _ = evaluate.NC(wm, extracted)
	}
	return evaluate.NewResult(def.Kind, def.Class, marker.Codec().Name(),
		marker.Channel().String(), desc, ber, nc, psnr, wnr)
}

// mergeParams overlays the battery's explicit parameters on the attack
// defaults; zero-valued fields keep the default.
func mergeParams(def, over attack.Params) attack.Params {
	out := def
	if over.Quality != 0 {
		out.Quality = over.Quality
	}
	if over.Level != 0 {
		out.Level = over.Level
	}
	if over.Degrees != 0 {
		out.Degrees = over.Degrees
	}
	if over.Scale != 0 {
		out.Scale = over.Scale
	}
	if over.Direction != "" {
		out.Direction = over.Direction
	}
	if over.Percentage != 0 {
		out.Percentage = over.Percentage
	}
	if over.Stddev != 0 {
		out.Stddev = over.Stddev
	}
	if over.Seed != 0 {
		out.Seed = over.Seed
	}
	if over.Radius != 0 {
		out.Radius = over.Radius
	}
	if over.Amount != 0 {
		out.Amount = over.Amount
	}
	return out
}
