package main

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/matryer/is"
)

func TestRun_Length(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{by: "length", parallelism: 4, batchSize: 1}, nil,
		strings.NewReader("a bb ccc dd a\nbb"), &out)

	is.NoErr(err)
	is.Equal(out.String(), "1: a\n2: bb dd\n3: ccc\n")
}

func TestRun_First(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{by: "first", parallelism: 2, selectMin: 2}, nil,
		strings.NewReader("apple avocado b banana cherry"), &out)

	is.NoErr(err)
	is.Equal(out.String(), "a: apple avocado\nb: banana\nc: cherry\n")
}

func TestRun_SelectMin(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{by: "length", parallelism: 2, batchSize: 1, selectMin: 3}, nil,
		strings.NewReader("a bb ccc dddd éèêë"), &out)

	is.NoErr(err)
	is.Equal(out.String(), "3: ccc\n4: dddd éèêë\n")
}

func TestRun_Each(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{each: true, parallelism: 2}, nil,
		strings.NewReader("ab ba bb"), &out)

	is.NoErr(err)
	is.Equal(out.String(), "a: ab ba\nb: ab ba bb\n")
}

func TestRun_UnknownKey(t *testing.T) {
	is := is.New(t)

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{by: "color", parallelism: 1}, nil,
		strings.NewReader("a"), &out)

	is.True(err != nil)
	is.Equal(out.Len(), 0)
}

func TestRun_Files(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()

	name := filepath.Join(dir, "words.txt")
	is.NoErr(os.WriteFile(name, []byte("x yy\nzz"), 0o600))

	out := bytes.Buffer{}

	err := run(context.Background(), logr.Discard(), options{by: "length", parallelism: 1}, []string{name}, nil, &out)

	is.NoErr(err)
	is.Equal(out.String(), "1: x\n2: yy zz\n")
}

func TestRun_MissingFile(t *testing.T) {
	is := is.New(t)

	err := run(context.Background(), logr.Discard(), options{by: "length", parallelism: 1},
		[]string{filepath.Join(t.TempDir(), "missing.txt")}, nil, &bytes.Buffer{})

	is.True(errors.Is(err, fs.ErrNotExist))
}

func TestNewLogger(t *testing.T) {
	is := is.New(t)

	_, err := newLogger("debug")
	is.NoErr(err)

	_, err = newLogger("loud")
	is.True(err != nil)
}
