package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/rating"
)

var pkCmd = &cobra.Command{
	Use:   "pk",
	Short: "Record and inspect pairwise question ratings",
}

var pkRateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Record one pairwise comparison",
	Long: `Rate records the outcome of one head-to-head comparison. Type goodbad
takes --winner and --loser; type hardeasy takes --hard and --easy.`,
	RunE: runPKRate,
}

var pkHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the rating leaderboard",
	RunE:  runPKHistory,
}

func init() {
	pkCmd.PersistentFlags().String("db", "data/pk.db", "SQLite database file for PK ratings")

	pkRateCmd.Flags().String("user", "cli", "user identifier")
	pkRateCmd.Flags().String("type", "goodbad", "rating type: goodbad or hardeasy")
	pkRateCmd.Flags().String("winner", "", "winning question ID (goodbad)")
	pkRateCmd.Flags().String("loser", "", "losing question ID (goodbad)")
	pkRateCmd.Flags().String("hard", "", "harder question ID (hardeasy)")
	pkRateCmd.Flags().String("easy", "", "easier question ID (hardeasy)")

	pkHistoryCmd.Flags().String("kind", "good", "leaderboard dimension: good or hard")

	pkCmd.AddCommand(pkRateCmd, pkHistoryCmd)
	rootCmd.AddCommand(pkCmd)
}

func openRatingStore(cmd *cobra.Command) (*rating.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	return rating.NewStore(dbPath)
}

func runPKRate(cmd *cobra.Command, args []string) error {
	store, err := openRatingStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	user, _ := cmd.Flags().GetString("user")
	ratingType, _ := cmd.Flags().GetString("type")
	winner, _ := cmd.Flags().GetString("winner")
	loser, _ := cmd.Flags().GetString("loser")
	hard, _ := cmd.Flags().GetString("hard")
	easy, _ := cmd.Flags().GetString("easy")

	ev := rating.Event{
		UserID:     user,
		RatingType: ratingType,
		Winner:     winner,
		Loser:      loser,
		Hard:       hard,
		Easy:       easy,
	}
	if err := store.Rate(cmd.Context(), ev); err != nil {
		return err
	}
	fmt.Println("rating recorded")
	return nil
}

func runPKHistory(cmd *cobra.Command, args []string) error {
	store, err := openRatingStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	kind, _ := cmd.Flags().GetString("kind")
	entries, err := store.History(cmd.Context(), kind)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "QID\tWINS\tLAST")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.QID, e.Count, time.Unix(e.Last, 0).Format(time.RFC3339))
	}
	return w.Flush()
}
