package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/domain"
)

func (a *app) personCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "person NAME AGE",
		Short: "Describe a person",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := parseInt(args[1])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), domain.NewPerson(args[0], age).Details())
		},
	}
}

func (a *app) soundCmd() *cobra.Command {
	var dog string

	c := &cobra.Command{
		Use:   "sound [SPECIES]",
		Short: "What does the animal say?",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m domain.SoundMaker
			switch {
			case dog != "":
				m = domain.NewDog(dog)
			case len(args) == 1:
				m = domain.NewAnimal(args[0])
			default:
				m = domain.NewAnimal("Animal")
			}
			return a.emit(cmd.OutOrStdout(), m.Species()+": "+m.MakeSound())
		},
	}

	c.Flags().StringVar(&dog, "dog", "", "Name of a dog (dogs always bark)")
	return c
}
