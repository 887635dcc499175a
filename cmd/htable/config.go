package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/scottcagno/hashtable/pkg/hashmap/openaddr"
)

type config struct {
	Sizes    []int  `yaml:"sizes"`
	LogLevel string `yaml:"log_level"`
}

func loadConfig(path string) (*config, error) {
	conf := new(config)
	if path == "" {
		return conf, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(b, conf); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return conf, nil
}

// tableOptions merges the config file with the flags, flags winning
func (o *rootOptions) tableOptions(logOutput io.Writer) (*openaddr.Options, error) {
	conf, err := loadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if len(o.sizes) > 0 {
		conf.Sizes = o.sizes
	}
	if o.logLevel != "" {
		conf.LogLevel = o.logLevel
	}
	opts := &openaddr.Options{
		Sizes:     conf.Sizes,
		LogOutput: logOutput,
	}
	if conf.LogLevel != "" {
		level, ok := openaddr.ParseLevel(conf.LogLevel)
		if !ok {
			return nil, errors.Errorf("unknown log level %q", conf.LogLevel)
		}
		opts.LoggingLevel = level
	}
	return opts, nil
}
