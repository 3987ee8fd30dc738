package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"oms-client/internal/domain"
)

func (a *app) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List, inspect and mutate products",
	}
	cmd.AddCommand(
		a.productsListCmd(),
		a.productsGetCmd(),
		a.productsCreateCmd(),
		a.productsUpdateCmd(),
		a.productsDeleteCmd(),
	)
	return cmd
}

func (a *app) productsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := a.services.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tW\tH\tWEIGHT\tIMAGE")
			for _, p := range products {
				img := ""
				if len(p.Images) > 0 {
					img = p.Images[0]
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%.1f\t%s\n",
					p.ID, p.Name, p.Width, p.Height, p.Weight, a.images.Resolve(img))
			}
			w.Flush()
			return nil
		},
	}
}

func (a *app) productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.services.Products.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0fx%.0f\t%.1fkg\n", p.ID, p.Name, p.Width, p.Height, p.Weight)
			for _, img := range p.Images {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", a.images.Resolve(img))
			}
			return nil
		},
	}
}

func productFlags(cmd *cobra.Command, in *productFlagSet) {
	cmd.Flags().StringVar(&in.name, "name", "", "product name")
	cmd.Flags().Float64Var(&in.width, "width", 0, "width in cm")
	cmd.Flags().Float64Var(&in.height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&in.weight, "weight", 0, "weight in kg")
	cmd.Flags().StringVar(&in.image, "image", "", "path to an image file")
}

type productFlagSet struct {
	name   string
	width  float64
	height float64
	weight float64
	image  string
}

func (f productFlagSet) input() (domain.ProductInput, error) {
	in := domain.ProductInput{
		Name:   f.name,
		Width:  f.width,
		Height: f.height,
		Weight: f.weight,
	}
	if f.image != "" {
		att, err := loadImage(f.image)
		if err != nil {
			return domain.ProductInput{}, err
		}
		in.Image = att
	}
	return in, nil
}

// loadImage reads a local file into an attachment, sniffing the content type
// from the extension first and the bytes second.
func loadImage(path string) (*domain.ImageAttachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	att := &domain.ImageAttachment{
		Filename:    filepath.Base(path),
		ContentType: ct,
		Data:        data,
	}
	if err := domain.ValidateImage(att); err != nil {
		return nil, err
	}
	return att, nil
}

func (a *app) productsCreateCmd() *cobra.Command {
	var flags productFlagSet
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			if err := domain.ValidateProductInput(in); err != nil {
				return err
			}
			p, err := a.services.Products.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p.ID)
			return nil
		},
	}
	productFlags(cmd, &flags)
	return cmd
}

func (a *app) productsUpdateCmd() *cobra.Command {
	var flags productFlagSet
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product, unset flags keep their old values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			p, err := a.services.Products.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", p.ID)
			return nil
		},
	}
	productFlags(cmd, &flags)
	return cmd
}

func (a *app) productsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.Products.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
