package parset

import (
	"runtime"
	"testing"

	"github.com/matryer/is"
)

func TestNewConfig(t *testing.T) {
	is := is.New(t)

	cfg := newConfig()

	is.Equal(cfg.parallelism, runtime.GOMAXPROCS(0))
	is.True(cfg.split != nil)
	is.Equal(len(cfg.split.Split(cfg.parallelism*2)), cfg.parallelism)
}

func TestNewConfig_Options(t *testing.T) {
	is := is.New(t)

	cfg := newConfig(WithParallelism(0), WithBatchSize(2))

	is.Equal(cfg.parallelism, 1)
	is.Equal(len(cfg.split.Split(5)), 3)
}
