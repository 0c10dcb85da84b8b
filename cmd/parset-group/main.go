// Command parset-group reads words and prints them grouped by a key.
//
// Words are read from the files given as arguments, or from standard input if there are none.
// Duplicate words are counted once. Each output line holds a key followed by its words, with
// keys and words sorted.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deadlyengineer/parset"
	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"
)

type options struct {
	by          string
	each        bool
	selectMin   int
	parallelism int
	batchSize   int
}

func main() {
	opts := options{}

	pflag.StringVar(&opts.by, "by", "length", "group key: length or first")
	pflag.BoolVar(&opts.each, "each", false, "group every word under each of its distinct letters, ignoring --by")
	pflag.IntVar(&opts.selectMin, "select-min", 0, "only group words with at least this many letters")
	pflag.IntVar(&opts.parallelism, "parallelism", runtime.GOMAXPROCS(0), "maximum number of batches processed at the same time")
	pflag.IntVar(&opts.batchSize, "batch-size", 0, "words per batch, 0 splits words evenly across batches")
	level := pflag.String("log-level", "info", "log level: trace, debug, info, warn, or error")
	pflag.Parse()

	log, err := newLogger(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, opts, pflag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Error(err, "grouping failed")
		os.Exit(1)
	}
}

func newLogger(level string) (logr.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return logr.Logger{}, err
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}).
		Level(lvl).
		With().Timestamp().Logger()

	return zerologr.New(&zl).WithName("parset-group"), nil
}

func run(ctx context.Context, log logr.Logger, opts options, files []string, stdin io.Reader, out io.Writer) error {
	words, err := readWords(files, stdin)
	if err != nil {
		return err
	}

	log.Info("read words", "words", words.Len(), "files", len(files))

	setOpts := []parset.Option{
		parset.WithParallelism(opts.parallelism),
		parset.WithLogger(log),
	}

	if opts.batchSize > 0 {
		setOpts = append(setOpts, parset.WithBatchSize(opts.batchSize))
	}

	pipeline := words.AsParallel(setOpts...)

	if opts.selectMin > 0 {
		pipeline = parset.SelectWith(pipeline, atLeast, opts.selectMin)
	}

	var groups *parset.Multimap[string, string]

	if opts.each {
		groups, err = parset.GroupByEach[string, string](ctx, pipeline, parset.FuncMapper(letters))
	} else {
		var key parset.MapperFunc[string, string]

		key, err = keyFunc(opts.by)
		if err != nil {
			return err
		}

		groups, err = parset.GroupBy[string, string](ctx, pipeline, key)
	}

	if err != nil {
		return err
	}

	return printGroups(out, groups)
}

func readWords(files []string, stdin io.Reader) (*parset.Set[string], error) {
	words := parset.NewSet[string]()

	if len(files) == 0 {
		return words, scanWords(stdin, words)
	}

	for _, name := range files {
		err := func() error {
			f, err := os.Open(name)
			if err != nil {
				return err
			}

			defer f.Close()

			return scanWords(f, words)
		}()

		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}

	return words, nil
}

func scanWords(r io.Reader, words *parset.Set[string]) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		words.Add(scanner.Text())
	}

	return scanner.Err()
}

func keyFunc(by string) (parset.MapperFunc[string, string], error) {
	switch by {
	case "length":
		return parset.FuncMapper(func(word string) string {
			return strconv.Itoa(utf8.RuneCountInString(word))
		}), nil

	case "first":
		return parset.FuncMapper(func(word string) string {
			r, _ := utf8.DecodeRuneInString(word)
			return string(r)
		}), nil

	default:
		return nil, fmt.Errorf("unknown group key %q", by)
	}
}

func atLeast(_ context.Context, _ context.CancelCauseFunc, word string, n int) bool {
	return utf8.RuneCountInString(word) >= n
}

// letters returns the distinct letters of word.
func letters(word string) []string {
	runes := parset.NewSet([]rune(word)...).Elements()

	keys := make([]string, len(runes))
	for i, r := range runes {
		keys[i] = string(r)
	}

	return keys
}

func printGroups(out io.Writer, groups *parset.Multimap[string, string]) error {
	keys := groups.Keys()

	// numeric keys sort by value
	slices.SortFunc(keys, func(a string, b string) bool {
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})

	for _, key := range keys {
		words := groups.Get(key)
		slices.Sort(words)

		if _, err := fmt.Fprintf(out, "%s: %s\n", key, strings.Join(words, " ")); err != nil {
			return err
		}
	}

	return nil
}
