package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/mfranklin/wordlehelper/solver"
	"github.com/mfranklin/wordlehelper/wordlist"
)

//go:embed words.txt
var defaultWords string

const maxGuesses = 6

type globalConfiguration struct {
	words   []solver.Word
	answers []solver.Word
	top     int
}

func globalConfig(wordsPath, answersPath string, top int) (globalConfiguration, error) {
	var (
		words []solver.Word
		err   error
	)
	if wordsPath == "" {
		words, err = wordlist.Load(strings.NewReader(defaultWords))
	} else {
		words, err = wordlist.LoadFile(wordsPath)
	}
	if err != nil {
		return globalConfiguration{}, err
	}
	if len(words) == 0 {
		return globalConfiguration{}, solver.ErrEmptyWordList
	}
	answers := words
	if answersPath != "" {
		pool, err := wordlist.LoadFile(answersPath)
		if err != nil {
			return globalConfiguration{}, err
		}
		answers = wordlist.Intersect(pool, words)
	}
	return globalConfiguration{words: words, answers: answers, top: top}, nil
}

func parseHistory(args []string) (solver.History, error) {
	history := solver.Reset()
	for i := 0; i < len(args); i += 2 {
		guess, err := solver.ParseWord(strings.ToLower(args[i]))
		if err != nil {
			return nil, fmt.Errorf("guess %q: %w", args[i], err)
		}
		feedback, err := solver.ParseFeedback(strings.ToLower(args[i+1]))
		if err != nil {
			return nil, fmt.Errorf("feedback %q: %w", args[i+1], err)
		}
		history = solver.AppendGuess(history, guess, feedback)
	}
	return history, nil
}

func printSuggestions(suggestions []solver.Suggestion) {
	for _, s := range suggestions {
		marker := " "
		if s.Candidate {
			marker = "*"
		}
		fmt.Printf("%s %s %8.1f\n", marker, s.Word, s.Score)
	}
}

// playWordle with guess/feedback pairs provided
func playWordle(cfg globalConfiguration, history solver.History, elim bool) error {
	candidates, conflicts, err := solver.ComputeCandidates(history, cfg.answers)
	if err != nil {
		return err
	}
	for _, c := range conflicts {
		fmt.Fprintf(os.Stderr, "warning: contradictory feedback for letter %c\n", c.Letter)
	}
	if len(candidates) == 0 {
		fmt.Println("no candidates remain, the answer is not in the word list or the feedback is inconsistent")
		return nil
	}
	mode := solver.PickMode(history, len(candidates))
	if elim {
		mode = solver.ModeElimination
	}
	suggestions, err := solver.Suggest(candidates, cfg.words, history, mode, cfg.top)
	if err != nil {
		return err
	}
	printSuggestions(suggestions)
	fmt.Printf("%d candidates remain\n", len(candidates))
	if len(candidates) <= 15 {
		fmt.Println(strings.Join(solver.WordsToStrings(candidates), " "))
	}
	return nil
}

func simulate(cfg globalConfiguration, opening string, solutionStrings []string, progress bool) error {
	openingWord, err := solver.ParseWord(opening)
	if err != nil {
		return fmt.Errorf("opening %q: %w", opening, err)
	}
	solutions := cfg.answers
	if len(solutionStrings) > 0 {
		solutions, err = solver.StringsToWords(solutionStrings)
		if err != nil {
			return err
		}
	}

	type game struct {
		solution solver.Word
		history  solver.History
	}
	bar := progressbar.DefaultSilent(int64(len(solutions)))
	if progress {
		bar = progressbar.Default(int64(len(solutions)))
	}
	sortedGames := make(map[int][]game)
	failed := 0
	for _, solution := range solutions {
		history, err := solver.Simulate(cfg.words, solution, openingWord, maxGuesses)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v after %s\n", solution, err, strings.Join(solver.WordsToStrings(guessWords(history)), " "))
			failed++
			bar.Add(1)
			continue
		}
		sortedGames[len(history)] = append(sortedGames[len(history)], game{solution, history})
		bar.Add(1)
	}

	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, numGuesses := range keys {
		games := sortedGames[numGuesses]
		fmt.Println(numGuesses, len(games), "---------------------")
		for _, g := range games {
			fmt.Printf("%s: %s\n", g.solution, strings.Join(solver.WordsToStrings(guessWords(g.history)), " "))
		}
	}
	if failed > 0 {
		fmt.Println(failed, "unsolved")
	}
	return nil
}

func guessWords(history solver.History) []solver.Word {
	words := make([]solver.Word, 0, len(history))
	for _, g := range history {
		words = append(words, g.Word)
	}
	return words
}

func first(cfg globalConfiguration) error {
	suggestions, err := solver.Suggest(cfg.answers, cfg.words, solver.Reset(), solver.ModeElimination, cfg.top)
	if err != nil {
		return err
	}
	printSuggestions(suggestions)
	return nil
}

func main() {
	wordsPath := ""
	answersPath := ""
	top := 10
	progress := false
	elim := false
	cmd := &cli.Command{
		Name:  "wdh",
		Usage: "wordle helper",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Value:       "",
				Aliases:     []string{"w"},
				Usage:       "word list file, one five letter word per line, default is the built in list",
				Destination: &wordsPath,
			},
			&cli.StringFlag{
				Name:        "answers",
				Value:       "",
				Aliases:     []string{"a"},
				Usage:       "answer pool file, a subset of the word list believed to contain the answer",
				Destination: &answersPath,
			},
			&cli.IntFlag{
				Name:        "top",
				Value:       10,
				Aliases:     []string{"t"},
				Usage:       "number of suggestions to print",
				Destination: &top,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game of wordle by entering pairs of [guess feedback]...
				feedback is five of r (absent), y (present), g (correct), like rrygg
				https://www.nytimes.com/games/wordle/index.html
				`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "elim",
						Value:       false,
						Usage:       "force elimination mode, rank by information gained instead of answer likelihood",
						Destination: &elim,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess feedback", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess feedback pair", 2)
					}
					cfg, err := globalConfig(wordsPath, answersPath, top)
					if err != nil {
						return err
					}
					history, err := parseHistory(cmd.Args().Slice())
					if err != nil {
						return err
					}
					return playWordle(cfg, history, elim)
				},
			},
			{
				Name: "sim",
				Usage: `sim --opening raise [solution]...
				Simulate games by specifying a list of solutions, or no solutions to
				simulate every word in the answer pool.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "opening",
						Value:   "raise",
						Aliases: []string{"o"},
						Usage:   "first word to guess",
					},
					&cli.BoolFlag{
						Name:        "progress",
						Value:       false,
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &progress,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := globalConfig(wordsPath, answersPath, top)
					if err != nil {
						return err
					}
					return simulate(cfg, cmd.String("opening"), cmd.Args().Slice(), progress)
				},
			},
			{
				Name: "first",
				Usage: `first
				Rank opening guesses by information gained
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := globalConfig(wordsPath, answersPath, top)
					if err != nil {
						return err
					}
					return first(cfg)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
