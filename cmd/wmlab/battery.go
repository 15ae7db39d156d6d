package main

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"gopkg.in/yaml.v3"

	watermarklab "github.com/martinszuc/watermarklab"
	"github.com/martinszuc/watermarklab/attack"
	"github.com/martinszuc/watermarklab/mark"
)

// Battery is the YAML description of one robustness run.
type Battery struct {
	Host      string          `yaml:"host"`
	Watermark WatermarkConfig `yaml:"watermark"`
	Codecs    []CodecConfig   `yaml:"codecs"`
	Attacks   []AttackConfig  `yaml:"attacks"`
}

// WatermarkConfig names the payload: either a bitmap image file or a text
// payload rendered into width x height cells (as a QR code when qr is set).
type WatermarkConfig struct {
	Image  string `yaml:"image"`
	Text   string `yaml:"text"`
	QR     bool   `yaml:"qr"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type CodecConfig struct {
	Kind      string  `yaml:"kind"` // lsb, dct-pair, dwt, svd
	Channel   string  `yaml:"channel"`
	BitPlane  int     `yaml:"bitplane"`
	Permute   bool    `yaml:"permute"`
	Key       string  `yaml:"key"`
	BlockSize int     `yaml:"blocksize"`
	CoefA     [2]int  `yaml:"coefa"`
	CoefB     [2]int  `yaml:"coefb"`
	Strength  float64 `yaml:"strength"`
	Subband   string  `yaml:"subband"`
	Alpha     float64 `yaml:"alpha"`
}

type AttackConfig struct {
	Kind   attack.Kind   `yaml:"kind"`
	Params attack.Params `yaml:",inline"`
}

func loadBattery(path string) (*Battery, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Battery
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse battery: %w", err)
	}
	if b.Host == "" || len(b.Codecs) == 0 {
		return nil, fmt.Errorf("battery needs a host image and at least one codec")
	}
	return &b, nil
}

func (b *Battery) hostImage() (image.Image, error) {
	f, err := os.Open(b.Host)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func (b *Battery) watermark() (watermarklab.Bitmap, error) {
	wc := b.Watermark
	switch {
	case wc.Image != "":
		f, err := os.Open(wc.Image)
		if err != nil {
			return watermarklab.Bitmap{}, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return watermarklab.Bitmap{}, err
		}
		return watermarklab.BitmapFromImage(img)
	case wc.Text != "" && wc.QR:
		return mark.QR(wc.Text, max(wc.Width, 21))
	case wc.Text != "":
		return mark.FromString(wc.Text, wc.Width, wc.Height)
	}
	return watermarklab.Bitmap{}, fmt.Errorf("watermark needs an image or a text payload")
}

func (c CodecConfig) build() (watermarklab.Codec, error) {
	switch c.Kind {
	case "lsb":
		return &watermarklab.LSBCodec{BitPlane: c.BitPlane, Permute: c.Permute, Key: c.Key}, nil
	case "dct-pair":
		return &watermarklab.DCTPairCodec{
			BlockSize: c.BlockSize,
			CoefA:     c.CoefA,
			CoefB:     c.CoefB,
			Strength:  c.Strength,
		}, nil
	case "dwt":
		return &watermarklab.DWTBandCodec{
			Strength: c.Strength,
			Subband:  watermarklab.Subband(c.Subband),
		}, nil
	case "svd":
		return &watermarklab.SVDCodec{Alpha: c.Alpha}, nil
	}
	return nil, fmt.Errorf("unknown codec kind %q", c.Kind)
}

func (c CodecConfig) channel() watermarklab.Channel {
	switch c.Channel {
	case "Cb", "cb":
		return watermarklab.ChannelCb
	case "Cr", "cr":
		return watermarklab.ChannelCr
	}
	return watermarklab.ChannelY
}
