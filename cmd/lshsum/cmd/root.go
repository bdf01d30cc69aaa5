package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagAlgorithm string
	log           zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lshsum",
	Short: "Compute and verify LSH message digests",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAlgorithm, "algorithm", "a", "LSH-256",
		"LSH variant (LSH-224, LSH-256, LSH-384, LSH-512 or LSH-512-256)")

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.AutomaticEnv()
}
