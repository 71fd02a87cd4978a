package main

import (
	"flag"
	"io"
	"os"

	"github.com/torlangballe/zchart/zchart"
	"github.com/torlangballe/zchart/zchartserver"
	"github.com/torlangballe/zchart/zfile"
	"github.com/torlangballe/zchart/zlog"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		zlog.Fatal(err, "zhistsvg")
	}
}

// run renders the -in chart file to svg, or serves charts with -serve.
func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("zhistsvg", flag.ContinueOnError)
	in := flags.String("in", "", "chart file (.json or .yaml) with config and series to render.")
	configPath := flags.String("config", "", "config file (.json, .toml or .yaml) used instead of the chart file's config.")
	out := flags.String("out", "", "svg file to write. Default is the chart file with .svg extension, - for stdout.")
	serve := flags.String("serve", "", "address like :8080 to serve charts on, instead of rendering a file.")
	verbose := flags.Bool("v", false, "log rendering details.")
	err := flags.Parse(args)
	if err != nil {
		return err
	}

	zlog.SetEnabled("zchart.EnableLog", *verbose)
	config := zchart.DefaultConfig()
	if *configPath != "" {
		config, err = zchart.LoadConfig(zfile.ExpandTildeInFilepath(*configPath))
		if err != nil {
			return zlog.Wrap(err, "loading config")
		}
	}
	if *serve != "" {
		return zchartserver.New(config).ListenAndServe(*serve)
	}
	if *in == "" {
		flags.Usage()
		return zlog.NewError("-in or -serve needed")
	}
	inPath := zfile.ExpandTildeInFilepath(*in)
	cf, err := zchart.LoadChartFile(inPath)
	if err != nil {
		return zlog.Wrap(err, "loading chart")
	}
	if *configPath != "" {
		cf.Config = config
	}
	chart := zchart.New(cf.Config, cf.Series...)
	if *out == "-" {
		return chart.Render(stdout)
	}
	outPath := zfile.ExpandTildeInFilepath(*out)
	if outPath == "" {
		outPath = zfile.ChangedExtension(inPath, ".svg")
	}
	err = zfile.WriteAtomically(outPath, func(w io.Writer) error {
		return chart.Render(w)
	})
	if err != nil {
		return err
	}
	zlog.Info(zchart.EnableLog, "Wrote", outPath)
	return nil
}
