package zchart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/torlangballe/zchart/zerrors"
	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/ztesting"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fpath, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return fpath
}

const (
	jsonConfig = `{"width": 300, "height": 200, "title": "Sizes", "logarithmic": true, "orderMin": -1, "seriesMargin": 0.1, "printValues": true}`
	tomlConfig = `
width = 300.0
height = 200.0
title = "Sizes"
logarithmic = true
orderMin = -1
seriesMargin = 0.1
printValues = true
`
	yamlConfig = `
width: 300
height: 200
title: Sizes
logarithmic: true
orderMin: -1
seriesMargin: 0.1
printValues: true
`
)

func TestLoadConfigFormats(t *testing.T) {
	want := DefaultConfig()
	want.Width = 300
	want.Height = 200
	want.Title = "Sizes"
	want.Logarithmic = true
	want.SeriesMargin = 0.1
	want.PrintValues = true
	for name, content := range map[string]string{"c.json": jsonConfig, "c.toml": tomlConfig, "c.yaml": yamlConfig} {
		c, err := LoadConfig(writeTemp(t, name, content))
		if err != nil {
			t.Fatal(name, err)
		}
		if c.OrderMin == nil {
			t.Fatal(name, "no orderMin")
		}
		ztesting.Equal(t, name+" orderMin", *c.OrderMin, -1)
		c.OrderMin = nil
		ztesting.Equal(t, name, c, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeTemp(t, "c.ini", "width=3"))
	_, got := zerrors.ContextErrorFromError(err)
	ztesting.Equal(t, "unsupported type", got, true)

	_, err = LoadConfig(writeTemp(t, "c.json", `{"width": -3}`))
	ztesting.Different(t, "invalid width", err, nil)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	ztesting.Different(t, "missing file", err, nil)
}

const (
	jsonChart = `{
	"config": {"width": 400, "height": 300},
	"series": [
		{"title": "a", "values": [[5, 0, 1], [null, 1, 2], [3, 2, 3]], "metadata": {"0": {"label": "first"}}},
		{"title": "b", "role": "secondary", "values": [[1, 0, 3]]}
	]
}`
	yamlChart = `
config:
  width: 400
  height: 300
series:
  - title: a
    values:
      - [5, 0, 1]
      - [null, 1, 2]
      - [3, 2, 3]
    metadata:
      0:
        label: first
  - title: b
    role: secondary
    values:
      - [1, 0, 3]
`
)

func TestLoadChartFile(t *testing.T) {
	for name, content := range map[string]string{"chart.json": jsonChart, "chart.yml": yamlChart} {
		cf, err := LoadChartFile(writeTemp(t, name, content))
		if err != nil {
			t.Fatal(name, err)
		}
		ztesting.Equal(t, name+" width", cf.Config.Width, 400.0)
		ztesting.Equal(t, name+" default kept", cf.Config.Tooltips, true)
		ztesting.Equal(t, name+" series", len(cf.Series), 2)
		a := cf.Series[0]
		ztesting.Equal(t, name+" values", len(a.Values), 3)
		ztesting.Equal(t, name+" first", a.Values[0], P(5, 0, 1))
		ztesting.Equal(t, name+" missing", zfloat.IsMissing(a.Values[1].Y), true)
		ztesting.Equal(t, name+" missing x", a.Values[1].X0, 1.0)
		ztesting.Equal(t, name+" metadata", a.Metadata[0].Label, "first")
		ztesting.Equal(t, name+" primary", a.Role, Primary)
		ztesting.Equal(t, name+" secondary", cf.Series[1].Role, Secondary)
	}
	_, err := LoadChartFile(writeTemp(t, "chart.toml", "x = 1"))
	ztesting.Different(t, "toml chart", err, nil)
}

func TestPointJSON(t *testing.T) {
	data, err := json.Marshal([]Point{P(zfloat.Missing, 1, 2), P(3, 0, 0.5)})
	if err != nil {
		t.Fatal(err)
	}
	ztesting.Equal(t, "marshal", string(data), "[[null,1,2],[3,0,0.5]]")

	var p Point
	err = json.Unmarshal([]byte("[1, 2]"), &p)
	ztesting.Different(t, "short point", err, nil)

	var r SeriesRole
	err = json.Unmarshal([]byte(`"tertiary"`), &r)
	ztesting.Different(t, "bad role", err, nil)
}
