// Command export writes the trial log as tab-separated values, one row per
// answered trial, with a column flagging aesthetic factor words.
//
// Usage:
//
//	export [-out trials.tsv] [-participant <uuid>] [-since 2024-01-02T15:04:05Z]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/trial"
	"github.com/heartmarshall/lexical-decision/internal/app"
	"github.com/heartmarshall/lexical-decision/internal/catalog"
	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

const pageSize = 1000

var header = []string{
	"id", "participant_id", "session_id", "image", "model", "word", "word_type",
	"is_aesthetic", "is_correct", "reaction_time_ms", "created_at",
}

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	participant := flag.String("participant", "", "export only this participant's trials")
	since := flag.String("since", "", "export only trials recorded at or after this RFC 3339 time")
	flag.Parse()

	filter, err := buildFilter(*participant, *since)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	var dst io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("create output file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		dst = f
	}

	bw := bufio.NewWriter(dst)
	n, err := export(ctx, trial.New(pool), filter, bw)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		logger.Error("export failed",
			slog.String("error", err.Error()),
			slog.Int("written", n),
		)
		os.Exit(1)
	}

	logger.Info("export completed", slog.Int("rows", n))
}

type trialLister interface {
	List(ctx context.Context, filter domain.TrialFilter) ([]domain.TrialRecord, error)
}

func buildFilter(participant, since string) (domain.TrialFilter, error) {
	filter := domain.TrialFilter{Limit: pageSize}

	if participant != "" {
		id, err := uuid.Parse(participant)
		if err != nil {
			return filter, fmt.Errorf("participant: %w", err)
		}
		filter.ParticipantID = &id
	}
	if since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return filter, fmt.Errorf("since: %w", err)
		}
		filter.Since = &t
	}
	return filter, nil
}

// export pages through the trial log and writes every record to w.
func export(ctx context.Context, trials trialLister, filter domain.TrialFilter, w io.Writer) (int, error) {
	tw := csv.NewWriter(w)
	tw.Comma = '\t'

	if err := tw.Write(header); err != nil {
		return 0, err
	}

	written := 0
	for {
		page, err := trials.List(ctx, filter)
		if err != nil {
			return written, fmt.Errorf("list trials: %w", err)
		}

		for _, rec := range page {
			if err := tw.Write(row(rec)); err != nil {
				return written, err
			}
			written++
		}

		if len(page) < filter.Limit {
			break
		}
		filter.AfterID = page[len(page)-1].ID
	}

	tw.Flush()
	return written, tw.Error()
}

func row(rec domain.TrialRecord) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.ParticipantID.String(),
		rec.SessionID.String(),
		rec.ImageFileName,
		rec.Model,
		rec.Word,
		string(rec.WordType),
		strconv.FormatBool(catalog.IsAestheticWord(rec.Word)),
		strconv.FormatBool(rec.IsCorrect),
		strconv.Itoa(rec.ReactionTimeMs),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
