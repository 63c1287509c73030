package main

import (
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"stemcheck/internal/customdict"
)

func newWordCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Manage custom known words stored in Redis",
	}

	withDict := func(run func(cmd *cobra.Command, cd *customdict.CustomDict, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer client.Close()
			return run(cmd, customdict.New(client, cfg.Redis.Key), args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <word>...",
			Short: "Add custom words",
			Args:  cobra.MinimumNArgs(1),
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, args []string) error {
				for _, a := range args {
					w, err := cd.Add(cmd.Context(), a)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "remove <word>...",
			Short: "Remove custom words",
			Args:  cobra.MinimumNArgs(1),
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, args []string) error {
				for _, a := range args {
					w, err := cd.Remove(cmd.Context(), a)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List custom words",
			Args:  cobra.NoArgs,
			RunE: withDict(func(cmd *cobra.Command, cd *customdict.CustomDict, _ []string) error {
				words, err := cd.All(cmd.Context())
				if err != nil {
					return err
				}
				slices.Sort(words)
				for _, w := range words {
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}),
		},
	)
	return cmd
}
