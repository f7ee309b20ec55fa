package options

import (
	"github.com/pixel-tools/cfgcheck/internal/config"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	ConfigLoader config.Loader
}

func defaultOptions() CmdOptions {
	return CmdOptions{
		ConfigLoader: config.DefaultLoader{},
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		o.ConfigLoader = l
		return nil
	}
}
