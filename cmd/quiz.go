package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/coach"
	"github.com/abhisek/repertoire/internal/mastery"
	"github.com/abhisek/repertoire/internal/quiz"
	"github.com/abhisek/repertoire/internal/rnd"
	"github.com/abhisek/repertoire/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run an adaptive opening quiz session",
	Long: `Generate a quiz session from the catalogue and answer it interactively.

Mastery is tracked in memory for the duration of the run; the summary
printed at the end is what a caller would persist.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("config", "", "Path to a TOML session config")
	quizCmd.Flags().Int("questions", 0, "Questions per session (overrides config)")
	quizCmd.Flags().String("difficulty", "", "Difficulty band, e.g. 2-4 (overrides config)")
	quizCmd.Flags().String("mode", "", "Session mode: blitz, rapid or puzzle (overrides config)")
	quizCmd.Flags().StringSlice("openings", nil, "ECO prefixes to draw from, e.g. B2,C6 (overrides config)")
	quizCmd.Flags().Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	quizCmd.Flags().Bool("coach", false, "Rewrite hints/explanations with the configured LLM coach")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cfg, err := quizConfig(cmd)
	if err != nil {
		return err
	}

	cat, rules, err := loadCatalogue(cmd)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	var src rnd.Source
	if seed != 0 {
		src = rnd.New(seed)
	} else {
		src = rnd.NewAuto()
	}

	assembler := session.NewAssembler(cat, quiz.NewGenerator(rules))
	records := map[string]mastery.Record{}
	sess, err := assembler.Build(cfg, records, src)
	if err != nil {
		return err
	}
	if len(sess.Questions) == 0 {
		fmt.Println("No questions could be generated for this configuration.")
		return nil
	}
	if len(sess.Questions) < cfg.QuestionsPerSession {
		fmt.Fprintf(os.Stderr, "warning: only %d of %d questions could be generated\n",
			len(sess.Questions), cfg.QuestionsPerSession)
	}

	if useCoach, _ := cmd.Flags().GetBool("coach"); useCoach {
		annotateSession(cmd.Context(), cat, sess)
	}

	answers := playSession(sess, src)
	summary := session.Grade(answers, records, time.Now())
	printSummary(sess, summary)
	return nil
}

func quizConfig(cmd *cobra.Command) (session.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := session.LoadConfig(path)
	if err != nil {
		return cfg, err
	}

	if n, _ := cmd.Flags().GetInt("questions"); n != 0 {
		cfg.QuestionsPerSession = n
	}
	if m, _ := cmd.Flags().GetString("mode"); m != "" {
		cfg.Mode = session.Mode(m)
	}
	if openings, _ := cmd.Flags().GetStringSlice("openings"); len(openings) > 0 {
		cfg.OpeningFilter = openings
	}
	if band, _ := cmd.Flags().GetString("difficulty"); band != "" {
		lo, hi, ok := strings.Cut(band, "-")
		if !ok {
			hi = lo
		}
		if _, err := fmt.Sscanf(lo+" "+hi, "%d %d", &cfg.DifficultyMin, &cfg.DifficultyMax); err != nil {
			return cfg, fmt.Errorf("invalid difficulty band %q", band)
		}
	}

	return cfg, cfg.Validate()
}

// annotateSession best-effort rewrites hints and explanations. Any
// provider trouble leaves the templated text in place.
func annotateSession(ctx context.Context, cat *catalogue.Catalogue, sess *session.Session) {
	provider, err := coach.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "coach not configured:", err)
		return
	}
	annotator := coach.NewAnnotator(provider)

	for i := range sess.Questions {
		q := &sess.Questions[i]
		e, ok := cat.ByECO(q.OpeningECO)
		if !ok {
			continue
		}
		if err := annotator.Annotate(ctx, q, e); err != nil {
			fmt.Fprintf(os.Stderr, "coach annotation for %s failed: %v\n", q.OpeningECO, err)
		}
	}
}

func playSession(sess *session.Session, src rnd.Source) []session.Answer {
	reader := bufio.NewReader(os.Stdin)
	var answers []session.Answer

	for i := range sess.Questions {
		q := &sess.Questions[i]
		fmt.Printf("\n[%d/%d] %s (difficulty %d)\n", i+1, len(sess.Questions), q.OpeningName, q.Difficulty)
		fmt.Printf("Position: %s\n", q.Position)
		fmt.Printf("What is the book move at move %d?\n", q.MoveNumber)

		choices := append([]string{q.CorrectMove}, q.Alternatives...)
		rnd.Shuffle(len(choices), src, func(a, b int) {
			choices[a], choices[b] = choices[b], choices[a]
		})
		for j, c := range choices {
			fmt.Printf("  %c) %s\n", 'a'+j, c)
		}
		if q.Hint != "" {
			fmt.Printf("Hint: %s\n", q.Hint)
		}

		start := time.Now()
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		elapsed := int(time.Since(start).Milliseconds())

		picked := resolveChoice(strings.TrimSpace(line), choices)
		correct := picked == q.CorrectMove
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. The book move is %s.\n", q.CorrectMove)
		}
		fmt.Println(q.Explanation)

		answers = append(answers, session.Answer{
			OpeningECO:  q.OpeningECO,
			Correct:     correct,
			TimeSpentMs: elapsed,
		})
	}

	return answers
}

// resolveChoice accepts either a letter (a-d) or the move itself.
func resolveChoice(input string, choices []string) string {
	if len(input) == 1 {
		idx := int(input[0] - 'a')
		if idx >= 0 && idx < len(choices) {
			return choices[idx]
		}
	}
	for _, c := range choices {
		if strings.EqualFold(c, input) {
			return c
		}
	}
	return input
}

func printSummary(sess *session.Session, sum session.Summary) {
	fmt.Printf("\nSession %s\n", sess.ID)
	fmt.Printf("  answered:   %d\n", sum.Answered)
	fmt.Printf("  correct:    %d (%.0f%%)\n", sum.Correct, sum.Accuracy()*100)
	fmt.Printf("  points:     %d\n", sum.Points)
	fmt.Printf("  max streak: %d\n", sum.MaxStreak)
	for eco, rec := range sum.Records {
		fmt.Printf("  %s: mastery %d (%d/%d)\n", eco, rec.Mastery, rec.Correct, rec.Attempts)
	}
}
