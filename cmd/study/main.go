// Command study runs an interactive flashcard session in the terminal.
// It loads a deck file, opens the configured review-state store when
// the mode needs one, and maps line commands onto session operations,
// printing a fresh snapshot after every applied transition.
//
// Flags:
//
//	--deck       path to a deck file (JSON array of {prompt, answer})
//	--mode       session mode: standard, quiz, spaced (default: standard)
//	--namespace  course namespace override for schedule state
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/TEJ42000/ALLMS-sub002/internal/app"
	"github.com/TEJ42000/ALLMS-sub002/internal/config"
	"github.com/TEJ42000/ALLMS-sub002/internal/deck"
	"github.com/TEJ42000/ALLMS-sub002/internal/domain"
	"github.com/TEJ42000/ALLMS-sub002/internal/service/session"
)

const helpText = `commands:
  enter/n   next card                 p         previous card
  f         flip                      s         star
  k         mark known                0..5      rate recall (spaced mode)
  c/w/x     correct/wrong/skip (quiz mode)
  filter starred|due|incorrect       restore   drop the filter
  shuffle   reshuffle                 restart   start over
  h         help                      q         quit`

func main() {
	deckFlag := flag.String("deck", "", "path to a deck file (JSON array of {prompt, answer})")
	modeFlag := flag.String("mode", "standard", "session mode: standard, quiz, spaced")
	namespaceFlag := flag.String("namespace", "", "course namespace override for schedule state")
	flag.Parse()

	if *deckFlag == "" {
		log.Fatal("missing required flag: --deck")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *namespaceFlag != "" {
		cfg.Store.Namespace = *namespaceFlag
	}

	logger := app.NewLogger(cfg.Log)

	mode, err := parseMode(*modeFlag)
	if err != nil {
		logger.Error("parse mode", slog.String("error", err.Error()))
		os.Exit(1)
	}

	contents, err := deck.Load(*deckFlag)
	if err != nil {
		logger.Error("load deck", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	out := &renderer{out: os.Stdout}
	fmt.Println(helpText)

	ctrl, cleanup, err := newController(ctx, logger, cfg, mode, contents, out.render)
	if err != nil {
		logger.Error("start session", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	r := &repl{ctx: ctx, ctrl: ctrl, out: os.Stdout}
	r.run(os.Stdin)
}

// newController wires a session controller for the chosen mode. Spaced
// repetition additionally needs the store-backed progress tracker; the
// returned cleanup releases it.
func newController(ctx context.Context, logger *slog.Logger, cfg *config.Config, mode domain.SessionMode, contents []domain.CardContent, render func(session.Snapshot)) (*session.Controller, func(), error) {
	sc := app.SessionConfig(mode, cfg)
	sc.OnSnapshot = render

	if mode != domain.ModeSpacedRepetition {
		ctrl, err := session.New(logger, contents, nil, sc)
		return ctrl, func() {}, err
	}

	store, cleanup, err := app.NewStore(ctx, logger, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	tracker, err := app.NewTracker(logger, store, cfg)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build tracker: %w", err)
	}
	ctrl, err := session.New(logger, contents, tracker, sc)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return ctrl, cleanup, nil
}

func parseMode(s string) (domain.SessionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return domain.ModeStandard, nil
	case "quiz":
		return domain.ModeQuiz, nil
	case "spaced", "sr", "spaced-repetition":
		return domain.ModeSpacedRepetition, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want standard, quiz, or spaced)", s)
	}
}

// repl reads line commands and dispatches them onto the controller.
type repl struct {
	ctx  context.Context
	ctrl *session.Controller
	out  io.Writer
}

func (r *repl) run(in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !r.dispatch(strings.TrimSpace(sc.Text())) {
			return
		}
	}
	// EOF: treat like quit.
	r.ctrl.Close()
}

// dispatch executes one command line. It returns false when the
// session should end.
func (r *repl) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := ""
	if len(fields) > 0 {
		cmd = strings.ToLower(fields[0])
	}

	switch cmd {
	case "", "n", "next":
		r.ctrl.Next()
	case "p", "prev":
		r.ctrl.Previous()
	case "f", "flip":
		r.ctrl.Flip()
	case "s", "star":
		r.withCurrent(r.ctrl.ToggleStar)
	case "k", "known":
		r.withCurrent(r.ctrl.ToggleKnown)
	case "0", "1", "2", "3", "4", "5":
		q, _ := strconv.Atoi(cmd)
		r.withCurrent(func(id domain.CardID) {
			r.ctrl.RateCard(r.ctx, id, domain.Quality(q))
		})
	case "c", "correct":
		r.answer(domain.OutcomeCorrect)
	case "w", "wrong":
		r.answer(domain.OutcomeIncorrect)
	case "x", "skip":
		r.answer(domain.OutcomeSkip)
	case "filter":
		if len(fields) < 2 {
			fmt.Fprintln(r.out, "usage: filter starred|due|incorrect")
			return true
		}
		r.ctrl.ApplyFilter(r.ctx, domain.ViewFilter(strings.ToUpper(fields[1])))
	case "restore":
		r.ctrl.RestoreFullDeck()
	case "shuffle":
		r.ctrl.Shuffle()
	case "restart":
		r.ctrl.Restart()
	case "h", "help":
		fmt.Fprintln(r.out, helpText)
	case "q", "quit":
		r.ctrl.Close()
		return false
	default:
		fmt.Fprintf(r.out, "unknown command %q (h for help)\n", cmd)
	}
	return true
}

func (r *repl) answer(outcome domain.QuizOutcome) {
	r.withCurrent(func(id domain.CardID) {
		r.ctrl.MarkQuizAnswer(id, outcome)
	})
}

// withCurrent resolves the card under the cursor and applies f to it.
func (r *repl) withCurrent(f func(domain.CardID)) {
	snap := r.ctrl.Snapshot()
	if snap.Card == nil {
		fmt.Fprintln(r.out, "no active card")
		return
	}
	f(snap.Card.ID)
}

// renderer prints snapshots. The controller also calls it from timer
// goroutines, so output is serialized.
type renderer struct {
	mu  sync.Mutex
	out io.Writer
}

func (r *renderer) render(s session.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.Result != nil {
		r.result(s.Result)
		return
	}
	if s.Phase == domain.PhaseClosed {
		fmt.Fprintln(r.out, "session closed")
		return
	}

	fmt.Fprintf(r.out, "\n[%d/%d] %s", s.Index+1, s.Total, s.Phase)
	if s.Filter != domain.FilterNone {
		fmt.Fprintf(r.out, " (filter: %s)", s.Filter)
	}
	if s.DegradedStorage {
		fmt.Fprint(r.out, " [storage degraded]")
	}
	fmt.Fprintln(r.out)

	if s.Card != nil {
		fmt.Fprintf(r.out, "  Q: %s\n", s.Card.Prompt)
		if s.Flipped {
			fmt.Fprintf(r.out, "  A: %s\n", s.Card.Answer)
		}
	}

	fmt.Fprintf(r.out, "  reviewed %d  known %d  starred %d", s.ReviewedCount, s.KnownCount, s.StarredCount)
	switch s.Mode {
	case domain.ModeQuiz:
		fmt.Fprintf(r.out, "  score %d  answered %d", s.QuizScore, s.AnsweredCount)
	case domain.ModeSpacedRepetition:
		fmt.Fprintf(r.out, "  due %d", s.DueCount)
	}
	fmt.Fprintln(r.out)
}

func (r *renderer) result(res *domain.SessionResult) {
	fmt.Fprintf(r.out, "\nsession finished in %s\n", res.Duration.Round(time.Second))
	fmt.Fprintf(r.out, "  cards %d  reviewed %d  known %d  starred %d\n",
		res.TotalCards, res.Reviewed, res.Known, res.Starred)
	if res.Mode == domain.ModeQuiz {
		fmt.Fprintf(r.out, "  score %d  points %d  accuracy %.0f%%  (correct %d, incorrect %d, skipped %d)\n",
			res.Score, res.RewardPoints, res.AccuracyRate*100,
			res.OutcomeCounts.Correct, res.OutcomeCounts.Incorrect, res.OutcomeCounts.Skipped)
	}
}
