package cmd

import (
	"fmt"
	"io"

	"github.com/Daskott/clientdir/colors"
	"github.com/Daskott/clientdir/models"
	"github.com/spf13/cobra"
)

func createResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drops & recreates the clients tables",
		Long: `Drops the users & phones tables if they exist and creates them again.
Every stored client & phone number is lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.ResetSchema(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s clients schema has been reset\n", colors.Green("Done:"))
			return nil
		},
	}
}

func createAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Adds a client with optional phone numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			firstName, _ := cmd.Flags().GetString("first-name")
			lastName, _ := cmd.Flags().GetString("last-name")
			email, _ := cmd.Flags().GetString("email")
			phones, _ := cmd.Flags().GetStringSlice("phone")

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := store.AddPerson(cmd.Context(), firstName, lastName, email, phones...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added client with ID: %v\n", id)
			return nil
		},
	}

	cmd.Flags().String("first-name", "", "client's first name")
	cmd.Flags().String("last-name", "", "client's last name")
	cmd.Flags().String("email", "", "client's email, unique across all clients")
	cmd.Flags().StringSliceP("phone", "p", []string{}, "client's phone number(s) e.g. -p 9003330000 -p 987654321")

	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("email")

	return cmd
}

func createAddPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-phone",
		Short: "Adds a phone number to an existing client",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetUint("id")
			phone, _ := cmd.Flags().GetString("phone")

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.AddPhone(cmd.Context(), id, phone)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added phone to client ID: %v\n", id)
			return nil
		},
	}

	cmd.Flags().Uint("id", 0, "client's ID")
	cmd.Flags().String("phone", "", "phone number to add")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("phone")

	return cmd
}

func createUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Updates a client's details",
		Long: `Updates the details of a client. Only the flags that are set are changed.
Setting --phones replaces all of the client's phone numbers, --phones="" removes them all.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetUint("id")
			changes := personChangesFromFlags(cmd)

			if changes == (models.PersonChanges{}) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s nothing to update for client ID: %v\n", warningLabel, id)
				return nil
			}

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.UpdatePerson(cmd.Context(), id, changes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Changed client ID: %v\n", id)
			return nil
		},
	}

	cmd.Flags().Uint("id", 0, "client's ID")
	cmd.Flags().String("first-name", "", "new first name")
	cmd.Flags().String("last-name", "", "new last name")
	cmd.Flags().String("email", "", "new email")
	cmd.Flags().StringSlice("phones", []string{}, "new set of phone numbers e.g. --phones 111111111,555555555")

	cmd.MarkFlagRequired("id")

	return cmd
}

func createDeletePhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-phone",
		Short: "Removes a phone number from a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetUint("id")
			phone, _ := cmd.Flags().GetString("phone")

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.DeletePhone(cmd.Context(), id, phone)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted phone from client ID: %v\n", id)
			return nil
		},
	}

	cmd.Flags().Uint("id", 0, "client's ID")
	cmd.Flags().String("phone", "", "phone number to remove")

	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("phone")

	return cmd
}

func createDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes a client & all of their phone numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetUint("id")

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			err = store.DeletePerson(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted client ID: %v\n", id)
			return nil
		},
	}

	cmd.Flags().Uint("id", 0, "client's ID")
	cmd.MarkFlagRequired("id")

	return cmd
}

func createFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Finds clients matching all of the given flags",
		Long: `Lists every (client, phone number) pair matching all of the flags that are set.
With no flags set, every client is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := models.FindCriteria{
				FirstName: stringFlag(cmd, "first-name"),
				LastName:  stringFlag(cmd, "last-name"),
				Email:     stringFlag(cmd, "email"),
				Phone:     stringFlag(cmd, "phone"),
			}

			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			matches, err := store.FindPerson(cmd.Context(), criteria)
			if err != nil {
				return err
			}

			printMatches(cmd.OutOrStdout(), matches)
			return nil
		},
	}

	cmd.Flags().String("first-name", "", "first name to match")
	cmd.Flags().String("last-name", "", "last name to match")
	cmd.Flags().String("email", "", "email to match")
	cmd.Flags().String("phone", "", "phone number to match")

	return cmd
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

// stringFlag returns nil for a flag that wasn't set, so an explicit empty value is kept
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetString(name)
	return &value
}

func personChangesFromFlags(cmd *cobra.Command) models.PersonChanges {
	changes := models.PersonChanges{
		FirstName: stringFlag(cmd, "first-name"),
		LastName:  stringFlag(cmd, "last-name"),
		Email:     stringFlag(cmd, "email"),
	}

	if cmd.Flags().Changed("phones") {
		phones, _ := cmd.Flags().GetStringSlice("phones")
		changes.Phones = models.PhonesPtr(phones...)
	}

	return changes
}

func printMatches(out io.Writer, matches []models.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(out, "No clients found")
		return
	}

	fmt.Fprintf(out, "Found clients: %v\n", len(matches))
	for _, match := range matches {
		phone := "-"
		if match.Phone != nil {
			phone = *match.Phone
		}

		fmt.Fprintf(out, "%s %v | %s %s | %s | %s\n",
			colors.Blue("ID:"), match.PersonID, match.FirstName, match.LastName, match.Email, phone)
	}
}
