package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nadeemahmad9/real-estate/client"
	"github.com/nadeemahmad9/real-estate/models"
)

func registerCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new admin and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newClient().Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s <%s>\n", session.User.Name, session.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Admin name")
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newClient().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			newClient().Logout()
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := newClient().Session()
			if !session.Authenticated() {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> (id %s)\n", session.User.Name, session.User.Email, session.User.ID)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	var opts client.ListOptions
	var featured string
	var minPrice, maxPrice float64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch featured {
			case "true":
				t := true
				opts.Featured = &t
			case "false":
				f := false
				opts.Featured = &f
			}
			if cmd.Flags().Changed("min-price") {
				opts.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				opts.MaxPrice = &maxPrice
			}

			properties, err := newClient().ListProperties(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Printf("%-26s  %-14s  %-12s  %12s  %s\n", "ID", "City", "Type", "Price", "Title")
			for _, p := range properties {
				fmt.Printf("%-26s  %-14s  %-12s  %12.0f  %s\n", p.ID.Hex(), p.City, p.PropertyType, p.Price, p.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.City, "city", "", "Filter by city (substring, case-insensitive)")
	cmd.Flags().StringVar(&opts.PropertyType, "type", "", "Filter by property type")
	cmd.Flags().StringVar(&opts.TransactionType, "transaction", "", "Filter by transaction type")
	cmd.Flags().StringVar(&featured, "featured", "", "Filter featured properties (true/false)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price (inclusive)")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price (inclusive)")
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one property as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := newClient().GetProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(property)
		},
	}
}

func createCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a property from a JSON payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := readPropertyFile(file)
			if err != nil {
				return err
			}
			created, err := newClient().CreateProperty(cmd.Context(), *property)
			if err != nil {
				return err
			}
			fmt.Printf("Created property %s\n", created.ID.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the property payload")
	cmd.MarkFlagRequired("file")
	return cmd
}

func updateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a property from a JSON payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := readPropertyFile(file)
			if err != nil {
				return err
			}
			updated, err := newClient().UpdateProperty(cmd.Context(), args[0], *property)
			if err != nil {
				return err
			}
			fmt.Printf("Updated property %s\n", updated.ID.Hex())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the property payload")
	cmd.MarkFlagRequired("file")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteProperty(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted property %s\n", args[0])
			return nil
		},
	}
}

func readPropertyFile(path string) (*models.Property, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var property models.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return &property, nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
