package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/run-for-love/internal/platform/tui"
	"github.com/vovakirdan/run-for-love/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagScorePlayer string
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  runforlove scores
  runforlove scores --recent --limit 20
  runforlove scores --player alice
  runforlove scores -i
  runforlove scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	title := "High Scores"
	switch {
	case flagScorePlayer != "":
		runs, err = store.PlayerRuns(flagScorePlayer, flagLimit)
		title = "Best runs of " + flagScorePlayer
	case flagRecent:
		runs, err = store.RecentRuns(flagLimit)
		title = "Recent Runs"
	default:
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	fmt.Println(titleStyle.Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runforlove play' to set the first high score!")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-4s  %-12s  %-7s  %-8s  %-12s  %-7s  %s",
		"Rank", "Player", "Score", "Result", "Level", "Time", "Date")))
	fmt.Printf("  %-4s  %-12s  %-7s  %-8s  %-12s  %-7s  %s\n",
		"----", "------", "-----", "------", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7d  %-8s  %-12s  %-7s  %s\n",
			i+1, r.Player, r.Score, r.Result, r.Mode,
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("Best: %d  Runs: %d  Wins: %d  Average: %.0f\n",
			stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore)
	}
}
