package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"maintenance-service/internal/client"
	"maintenance-service/internal/logger"
	"maintenance-service/internal/model"
	"maintenance-service/internal/workflow"
)

// app: окружение команды.
type app struct {
	api    *client.Client
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := pflag.NewFlagSet("maintenancectl", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	server := global.String("server", envOr("MAINTENANCE_SERVER", "http://localhost:8080"), "service base URL")
	verbose := global.BoolP("verbose", "v", false, "log requests and retries")
	global.Usage = func() { printUsage(stderr) }

	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		printUsage(stderr)
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logg, err := logger.New(level, "console")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logg.Sync() }()

	a := &app{
		api:    client.New(*server, client.WithLogger(logg)),
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
	}

	commands := map[string]func(context.Context, []string) error{
		"requests": a.requests,
		"show":     a.show,
		"status":   a.status,
		"assign":   a.assign,
		"calendar": a.calendar,
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		printUsage(stderr)
		return 2
	}

	if err := cmd(ctx, rest[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logg.Debug("command failed", zap.String("command", rest[0]), zap.Error(err))
		a.printError(err)
		return 1
	}
	return 0
}

func (a *app) printError(err error) {
	if errors.Is(err, client.ErrConfirmationDeclined) {
		fmt.Fprintln(a.stderr, "cancelled")
		return
	}
	fmt.Fprintf(a.stderr, "error: %v\n", err)
	for field, msgs := range client.FieldErrors(err) {
		fmt.Fprintf(a.stderr, "  %s: %s\n", field, strings.Join(msgs, "; "))
	}
}

func (a *app) requests(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("requests", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	status := fs.String("status", "", "filter by status")
	kind := fs.String("type", "", "filter by request type")
	equipment := fs.Int64("equipment", 0, "filter by equipment id")
	page := fs.Int("page", 0, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := client.RequestQuery{EquipmentID: *equipment, Page: *page}
	if *status != "" {
		s, err := model.ParseStatus(strings.ToUpper(*status))
		if err != nil {
			return err
		}
		q.Status = s
	}
	if *kind != "" {
		t, err := model.ParseRequestType(strings.ToUpper(*kind))
		if err != nil {
			return err
		}
		q.RequestType = t
	}

	res, err := a.api.ListRequests(ctx, q)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTYPE\tEQUIPMENT\tSUBJECT\tSCHEDULED")
	for _, r := range res.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Status, r.RequestType, r.EquipmentName, r.Subject, r.ScheduledDate.Format(time.DateTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%d of %d\n", len(res.Results), res.Count)
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("show: request id required")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	r, err := a.api.GetRequest(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "#%d %s\n", r.ID, r.Subject)
	fmt.Fprintf(a.stdout, "  status:     %s\n", r.Status.Label())
	fmt.Fprintf(a.stdout, "  type:       %s\n", r.RequestType)
	fmt.Fprintf(a.stdout, "  equipment:  %s (#%d)\n", r.EquipmentName, r.EquipmentID)
	fmt.Fprintf(a.stdout, "  team:       %s\n", deref(r.TeamName, "-"))
	fmt.Fprintf(a.stdout, "  technician: %s\n", deref(r.TechnicianName, "Unassigned"))
	fmt.Fprintf(a.stdout, "  scheduled:  %s (%s)\n", r.ScheduledDate.Format(time.DateTime), r.Duration)

	allowed := workflow.AllowedTransitions(r.Status)
	if len(allowed) == 0 {
		fmt.Fprintln(a.stdout, "  next:       none (final)")
		return nil
	}
	names := make([]string, 0, len(allowed))
	for _, s := range allowed {
		names = append(names, string(s))
	}
	fmt.Fprintf(a.stdout, "  next:       %s\n", strings.Join(names, ", "))
	return nil
}

func (a *app) status(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("status", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	assumeYes := fs.BoolP("yes", "y", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("status: request id and target status required")
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}
	to, err := model.ParseStatus(strings.ToUpper(fs.Arg(1)))
	if err != nil {
		return err
	}

	confirm := client.Confirmer(client.ConfirmFunc(a.prompt))
	if *assumeYes {
		confirm = client.ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
	}

	r, err := a.api.ChangeStatus(ctx, id, to, confirm)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "#%d is now %s\n", r.ID, r.Status.Label())
	return nil
}

// prompt спрашивает подтверждение; любой ответ кроме y/yes считается отказом.
func (a *app) prompt(_ context.Context, question string) (bool, error) {
	fmt.Fprintf(a.stdout, "%s [y/N]: ", question)
	line, err := a.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (a *app) assign(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("assign: request id and user id (or none) required")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var tech *int64
	if args[1] != "none" {
		uid, err := parseID(args[1])
		if err != nil {
			return err
		}
		tech = &uid
	}

	r, err := a.api.AssignTechnician(ctx, id, tech)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "#%d technician: %s\n", r.ID, deref(r.TechnicianName, "Unassigned"))
	return nil
}

func (a *app) calendar(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("calendar", pflag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fromRaw := fs.String("from", "", "start date (YYYY-MM-DD)")
	toRaw := fs.String("to", "", "end date (YYYY-MM-DD), exclusive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	from, err := parseDay(*fromRaw)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	to, err := parseDay(*toRaw)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	events, err := a.api.Calendar(ctx, from, to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tREQUEST\tEQUIPMENT\tTECHNICIAN\tTITLE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t#%d\t%s\t%s\t%s\n",
			e.Start.Format(time.DateTime), e.End.Format(time.DateTime), e.RequestID, e.Equipment, e.Technician, e.Title)
	}
	return tw.Flush()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.DateOnly, s)
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
