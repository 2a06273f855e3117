// Package batch converts every Postman collection in a directory, running
// conversions concurrently on a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/internal/fileutil"
	"github.com/erraggy/postman2oas/openapi"
)

// Options controls a batch run.
type Options struct {
	InputDir  string
	OutputDir string
	Format    openapi.Format
	// Workers bounds concurrent conversions. Zero or less uses runtime.NumCPU().
	Workers   int
	Converter *converter.Converter
	Logger    *slog.Logger
	// OnStart, when set, is called before a file is read. OnFile, when set,
	// is called after it finishes. Calls to both are serialized, and a
	// file's OnStart always precedes its OnFile; across files they
	// interleave in the order workers reach them.
	OnStart func(input string)
	OnFile  func(FileResult)
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input  string
	Output string
	Result *converter.ConversionResult
	Err    error
}

// Summary reports a finished run. Files is in input order.
type Summary struct {
	Files            []FileResult
	Processed        int
	Failed           int
	CreatedOutputDir bool
}

// event is a progress notification passed from a worker to the collector.
type event struct {
	started bool
	result  FileResult
}

// ConvertFile converts the collection at input and writes the document to
// output in the given format.
func ConvertFile(conv *converter.Converter, input, output string, format openapi.Format) (*converter.ConversionResult, error) {
	if conv == nil {
		conv = converter.New()
	}
	result, err := conv.Convert(input)
	if err != nil {
		return nil, err
	}
	data, err := result.Document.MarshalFormat(format)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if err := fileutil.WriteFile(output, data); err != nil {
		return nil, err
	}
	return result, nil
}

// Run converts each *.json file directly inside opts.InputDir into
// opts.OutputDir, naming outputs with fileutil.OutputName. A failing file is
// logged and counted; it never stops the others. Run returns an error only
// when the input directory cannot be listed, the output directory cannot be
// created, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	format := opts.Format
	if format == "" {
		format = openapi.FormatYAML
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	inputs, err := fileutil.ListJSON(opts.InputDir)
	if err != nil {
		return nil, err
	}
	created, err := fileutil.EnsureDir(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Files:            make([]FileResult, len(inputs)),
		CreatedOutputDir: created,
	}
	events := make(chan event)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for ev := range events {
			if ev.started {
				if opts.OnStart != nil {
					opts.OnStart(ev.result.Input)
				}
				continue
			}
			fr := ev.result
			if fr.Err != nil {
				summary.Failed++
			} else {
				summary.Processed++
			}
			if opts.OnFile != nil {
				opts.OnFile(fr)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			output := filepath.Join(opts.OutputDir, fileutil.OutputName(input, format.Extension()))
			fr := FileResult{Input: input, Output: output}
			events <- event{started: true, result: fr}
			fr.Result, fr.Err = ConvertFile(opts.Converter, input, output, format)
			if fr.Err != nil {
				logger.Warn("conversion failed", "input", input, "error", fr.Err)
			} else {
				logger.Debug("converted", "input", input, "output", output)
			}
			summary.Files[i] = fr
			events <- event{result: fr}
			return nil
		})
	}
	err = g.Wait()
	close(events)
	<-collected
	if err != nil {
		return summary, fmt.Errorf("batch: %w", err)
	}
	return summary, nil
}
