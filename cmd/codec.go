package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"uuid62/internal/config"
	"uuid62/pkg/uuid62"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// formatFlag returns the value of the named format flag, falling back to the
// configured identifier format when the flag is empty.
func formatFlag(cmd *cobra.Command, name string, cfg *config.Config) (uuid62.Format, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return cfg.IDFormat() //nolint: wrapcheck
	}

	return uuid62.ParseFormat(s) //nolint: wrapcheck
}

// encodeIDs writes one line per identifier: the canonical form followed by
// the form selected by f. random adds that many freshly generated UUIDs.
func encodeIDs(w io.Writer, f uuid62.Format, args []string, random int) error {
	if random < 0 {
		return fmt.Errorf("invalid random count %d, must not be negative", random)
	}

	ids := make([]uuid.UUID, 0, len(args)+random)
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return fmt.Errorf("invalid uuid %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	for range random {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("could not generate uuid: %w", err)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", id, f.Encode(id)); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}

	return nil
}

// decodeIDs writes the canonical form of every argument parsed in form f.
func decodeIDs(w io.Writer, f uuid62.Format, args []string) error {
	for _, arg := range args {
		id, err := f.ParseLenient(arg)
		if err != nil {
			return fmt.Errorf("invalid %s identifier %q: %w", f, arg, err)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", arg, id); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}

	return nil
}

// encodeCommand constructs the 'encode' subcommand that prints the compact
// form of canonical UUIDs.
func encodeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [uuid...]",
		Short: "Encodes canonical UUIDs into compact identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			random, _ := cmd.Flags().GetInt("random")
			if random < 0 {
				return fmt.Errorf("--random must not be negative, got %d", random)
			}
			if len(args) == 0 && random == 0 {
				return errors.New("nothing to encode, pass UUIDs or --random")
			}

			f, err := formatFlag(cmd, "format", cfg)
			if err != nil {
				return err
			}

			return encodeIDs(os.Stdout, f, args, random)
		},
	}

	cmd.Flags().String("format", "", "Output format: base62, packed or canonical (defaults to the configured format)")
	cmd.Flags().IntP("random", "r", 0, "Number of random UUIDs to generate and encode")

	return cmd
}

// decodeCommand constructs the 'decode' subcommand that prints the canonical
// form of compact identifiers.
func decodeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decodes compact identifiers into canonical UUIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatFlag(cmd, "from", cfg)
			if err != nil {
				return err
			}

			return decodeIDs(os.Stdout, f, args)
		},
	}

	cmd.Flags().String("from", "", "Input format: base62, packed or canonical (defaults to the configured format)")

	return cmd
}
