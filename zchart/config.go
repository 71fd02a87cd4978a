package zchart

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/torlangballe/zchart/zdict"
	"github.com/torlangballe/zchart/zerrors"
	"github.com/torlangballe/zchart/zjson"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zmath"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Width       float64 `json:"width" toml:"width" yaml:"width"`
	Height      float64 `json:"height" toml:"height" yaml:"height"`
	Title       string  `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Horizontal  bool    `json:"horizontal,omitempty" toml:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Logarithmic bool    `json:"logarithmic,omitempty" toml:"logarithmic,omitempty" yaml:"logarithmic,omitempty"`
	// Zero is the baseline bars are drawn from
	Zero float64 `json:"zero,omitempty" toml:"zero,omitempty" yaml:"zero,omitempty"`
	// OrderMin is the smallest power of ten a tick step can be
	OrderMin *int `json:"orderMin,omitempty" toml:"orderMin,omitempty" yaml:"orderMin,omitempty"`
	MinScale int  `json:"minScale" toml:"minScale" yaml:"minScale"`
	MaxScale int  `json:"maxScale" toml:"maxScale" yaml:"maxScale"`
	// SeriesMargin is the fraction of a bar's width removed from each side
	SeriesMargin float64 `json:"seriesMargin,omitempty" toml:"seriesMargin,omitempty" yaml:"seriesMargin,omitempty"`
	RoundedBars  float64 `json:"roundedBars,omitempty" toml:"roundedBars,omitempty" yaml:"roundedBars,omitempty"`
	PrintValues  bool    `json:"printValues,omitempty" toml:"printValues,omitempty" yaml:"printValues,omitempty"`
	Tooltips     bool    `json:"tooltips" toml:"tooltips" yaml:"tooltips"`
	ShowXGuides  bool    `json:"showXGuides,omitempty" toml:"showXGuides,omitempty" yaml:"showXGuides,omitempty"`
	ShowYGuides  bool    `json:"showYGuides" toml:"showYGuides" yaml:"showYGuides"`
	ValueDigits  int     `json:"valueDigits" toml:"valueDigits" yaml:"valueDigits"`
	Margin       float64 `json:"margin" toml:"margin" yaml:"margin"` // around the plot area, as fraction of the smaller side
}

// ChartFile is a chart document, as read by the command and posted to the server.
type ChartFile struct {
	Config Config    `json:"config" yaml:"config"`
	Series []*Series `json:"series" yaml:"series"`
}

func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		MinScale:    zmath.DefaultMinScale,
		MaxScale:    zmath.DefaultMaxScale,
		Tooltips:    true,
		ShowYGuides: true,
		ValueDigits: 4,
		Margin:      0.02,
	}
}

func (c Config) Orientation() Orientation {
	if c.Horizontal {
		return Horizontal
	}
	return Vertical
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return zerrors.MakeContextError(zdict.Dict{"width": c.Width, "height": c.Height}, "chart size must be positive")
	}
	if c.Margin < 0 || c.Margin >= 0.5 {
		return zerrors.MakeContextError(zdict.Dict{"margin": c.Margin}, "margin must be in [0, 0.5)")
	}
	if c.SeriesMargin < 0 || c.SeriesMargin >= 0.5 {
		return zerrors.MakeContextError(zdict.Dict{"seriesMargin": c.SeriesMargin}, "series margin must be in [0, 0.5)")
	}
	if c.MinScale < 1 || c.MaxScale < c.MinScale {
		return zerrors.MakeContextError(zdict.Dict{"minScale": c.MinScale, "maxScale": c.MaxScale}, "bad scale tick counts")
	}
	if c.ValueDigits < 0 {
		return zerrors.MakeContextError(zdict.Dict{"valueDigits": c.ValueDigits}, "value digits can't be negative")
	}
	return nil
}

// LoadConfig reads a config from a .json, .toml or .yaml/.yml file, over DefaultConfig().
func LoadConfig(fpath string) (Config, error) {
	c := DefaultConfig()
	err := decodeFile(&c, fpath, true)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// LoadChartFile reads a chart document from a .json or .yaml/.yml file.
// Its config starts as DefaultConfig(), so only changed fields need to be given.
func LoadChartFile(fpath string) (ChartFile, error) {
	cf := ChartFile{Config: DefaultConfig()}
	err := decodeFile(&cf, fpath, false)
	if err != nil {
		return cf, err
	}
	return cf, cf.Config.Validate()
}

func decodeFile(to any, fpath string, allowTOML bool) error {
	ext := strings.ToLower(filepath.Ext(fpath))
	if ext == ".json" {
		return zjson.UnmarshalFromFile(to, fpath, false)
	}
	file, err := os.Open(fpath)
	if err != nil {
		return zlog.Error(err, "open", fpath)
	}
	defer file.Close()
	switch ext {
	case ".toml":
		if allowTOML {
			err = toml.NewDecoder(file).Decode(to)
			return zlog.Wrap(err, "decode toml", fpath)
		}
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(to)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return zlog.Wrap(err, "decode yaml", fpath)
	}
	return zerrors.MakeContextError(zdict.Dict{"file": fpath}, "unsupported file type", ext)
}
