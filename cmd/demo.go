package cmd

import (
	"fmt"

	"github.com/Daskott/clientdir/models"
	"github.com/spf13/cobra"
)

func createDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Runs every client operation against sample data",
		Long: `Resets the clients schema, then adds, changes, finds & deletes a sample client.
Every stored client & phone number is lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			return runDemo(cmd, store)
		},
	}
}

func runDemo(cmd *cobra.Command, store *models.Store) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	err := store.ResetSchema(ctx)
	if err != nil {
		return err
	}

	id, err := store.AddPerson(ctx, "Ivan", "Ivanov", "ivanov@mail.ru", "9003330000", "987654321")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added client with ID: %v\n", id)

	err = store.AddPhone(ctx, id, "123456789")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added phone to client ID: %v\n", id)

	err = store.UpdatePerson(ctx, id, models.PersonChanges{
		FirstName: models.StringPtr("Ivan"),
		Phones:    models.PhonesPtr("111111111", "555555555"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Changed client ID: %v\n", id)

	err = store.DeletePhone(ctx, id, "555555555")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted phone from client ID: %v\n", id)

	matches, err := store.FindPerson(ctx, models.FindCriteria{FirstName: models.StringPtr("Ivan")})
	if err != nil {
		return err
	}
	printMatches(out, matches)

	err = store.DeletePerson(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted client ID: %v\n", id)

	return nil
}
