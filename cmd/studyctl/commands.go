package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/khy07181/the-java-test/internal/domain/notification"
	"github.com/khy07181/the-java-test/internal/domain/study"
	"golang.org/x/sync/errgroup"
)

const maxParallelCreates = 4

var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string, out io.Writer) error
}

var commands = map[string]command{
	"member-add":    {summary: "register a member", run: runMemberAdd},
	"create":        {summary: "create studies owned by a member", run: runCreate},
	"open":          {summary: "open a draft study", run: runOpen},
	"show":          {summary: "show a study", run: runShow},
	"list":          {summary: "list studies", run: runList},
	"validate":      {summary: "validate a member as study owner", run: runValidate},
	"notifications": {summary: "list sent notifications", run: runNotifications},
}

func run(ctx context.Context, a *app, args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		printUsage(out)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd.run(ctx, a, args[1:], out)
}

func printUsage(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "usage: studyctl <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(out, "  %-14s %s\n", name, commands[name].summary)
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runMemberAdd(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("member-add", out)
	id := fs.Int64("id", 0, "member id")
	email := fs.String("email", "", "member email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := a.directory.Register(ctx, *id, *email)
	if err != nil {
		return err
	}
	return writeJSON(out, m)
}

func runCreate(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("create", out)
	memberID := fs.Int64("member", 0, "owner member id")
	limit := fs.Int("limit", 0, "capacity limit")
	name := fs.String("name", "", "study name")
	count := fs.Int("count", 1, "number of studies to create")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 1 {
		return fmt.Errorf("%w: count must be at least 1", errUsage)
	}

	created := make([]*study.Study, *count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCreates)
	for i := range created {
		i := i
		g.Go(func() error {
			st, err := study.New(*limit, studyName(*name, i, *count))
			if err != nil {
				return err
			}
			saved, err := a.studies.CreateNewStudy(gctx, *memberID, st)
			if err != nil {
				return err
			}
			created[i] = saved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if *count == 1 {
		return writeJSON(out, created[0])
	}
	return writeJSON(out, created)
}

func studyName(base string, i, count int) string {
	if count == 1 || base == "" {
		return base
	}
	return fmt.Sprintf("%s #%d", base, i+1)
}

func runOpen(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("open", out)
	id := fs.String("id", "", "study id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := a.studies.OpenStudy(ctx, *id)
	if err != nil {
		return err
	}
	return writeJSON(out, st)
}

func runShow(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("show", out)
	id := fs.String("id", "", "study id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := a.studies.Get(ctx, *id)
	if err != nil {
		return err
	}
	return writeJSON(out, st)
}

func runList(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("list", out)
	owner := fs.Int64("owner", 0, "filter by owner member id")
	status := fs.String("status", "", "filter by status (DRAFT or OPENED)")
	limit := fs.Int("limit", 0, "maximum results")
	offset := fs.Int("offset", 0, "results to skip")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := study.ListOptions{Limit: *limit, Offset: *offset}
	if *owner != 0 {
		opts.OwnerID = owner
	}
	if *status != "" {
		s := study.Status(strings.ToUpper(*status))
		opts.Status = &s
	}

	studies, err := a.studies.List(ctx, opts)
	if err != nil {
		return err
	}
	if studies == nil {
		studies = []*study.Study{}
	}
	return writeJSON(out, studies)
}

func runValidate(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("validate", out)
	memberID := fs.Int64("member", 0, "member id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.studies.ValidateOwner(ctx, *memberID); err != nil {
		return err
	}
	return writeJSON(out, map[string]any{"member_id": *memberID, "valid": true})
}

func runNotifications(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("notifications", out)
	memberID := fs.Int64("member", 0, "filter by member id")
	studyID := fs.String("study", "", "filter by study id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := notification.ListOptions{}
	if *memberID != 0 {
		opts.MemberID = memberID
	}
	if *studyID != "" {
		opts.StudyID = studyID
	}

	sent, err := a.notifications.List(ctx, opts)
	if err != nil {
		return err
	}
	if sent == nil {
		sent = []notification.Notification{}
	}
	return writeJSON(out, sent)
}
