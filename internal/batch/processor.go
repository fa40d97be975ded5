package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"sdd-exml/internal/exml"
)

// Config holds all shared resources for a batch run.
type Config struct {
	InputDir  string
	OutputDir string // empty: write next to each input
	Codec     *exml.Codec
	Workers   int
	Logger    *logrus.Logger
}

// Job is one container to decrypt.
type Job struct {
	Input  string
	Output string
}

// Result holds the outcome of processing one container.
type Result struct {
	Input   string
	Output  string
	Size    int64
	Success bool
	Warning string
	Error   string
}

// FindJobs lists the *.exml files directly inside cfg.InputDir, sorted by name,
// and assigns each its output path.
func FindJobs(cfg Config) ([]Job, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", cfg.InputDir, err)
	}

	var jobs []Job
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".exml") {
			continue
		}
		in := filepath.Join(cfg.InputDir, e.Name())
		out := exml.OutputPath(in, exml.ModeDecrypt)
		if cfg.OutputDir != "" {
			out = filepath.Join(cfg.OutputDir, filepath.Base(out))
		}
		jobs = append(jobs, Job{Input: in, Output: out})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Input < jobs[j].Input })
	return jobs, nil
}

// Run decrypts all jobs using a worker pool. Every container is decrypted by
// its own codec call; only the result slot for that job is written.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Codec == nil {
		cfg.Codec = &exml.Codec{Logger: cfg.Logger}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					log.WithFields(logrus.Fields{
						"done":  p,
						"total": total,
						"rate":  fmt.Sprintf("%.1f/s", float64(p)/time.Since(start).Seconds()),
					}).Info("batch: progress")
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg.Codec, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(codec *exml.Codec, job Job) Result {
	res := Result{Input: job.Input, Output: job.Output}

	err := codec.ProcessFile(exml.ModeDecrypt, job.Input, job.Output)
	switch {
	case errors.Is(err, exml.ErrMalformedPadding):
		res.Warning = err.Error()
	case err != nil:
		res.Error = err.Error()
		return res
	}

	if fi, statErr := os.Stat(job.Output); statErr == nil {
		res.Size = fi.Size()
	}
	res.Success = true
	return res
}
