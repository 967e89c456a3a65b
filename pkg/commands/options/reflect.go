package options

import (
	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/session"
)

// RatingOptions carries the post-session reflection flags.
type RatingOptions struct {
	Rating  string
	Comment string
}

func AddRatingArgs(cmd *cobra.Command, o *RatingOptions) {
	cmd.Flags().StringVarP(&o.Rating, "rating", "r", "",
		"Reflection rating: productive, average, or distracted.")
	cmd.Flags().StringVarP(&o.Comment, "comment", "m", "",
		"Free-form reflection note.")
}

// Parsed returns the typed rating; ok is false for unrecognized input.
func (o *RatingOptions) Parsed() (session.Rating, bool) {
	r := session.Rating(o.Rating)
	return r, session.ValidRating(r)
}
