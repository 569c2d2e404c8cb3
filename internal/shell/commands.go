// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package shell

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tomtom215/tourguide/internal/models"
	"github.com/tomtom215/tourguide/internal/viewmodel"
)

var errUsage = errors.New("usage")

func (s *Shell) commandTable() map[string]*command {
	cmds := []*command{
		{name: "help", help: "show this list", run: s.help},
		{name: "login", usage: "<email> [password]", help: "sign in", run: s.login},
		{name: "signup", help: "create an account (asks for the details)", run: s.signup},
		{name: "logout", help: "sign out and forget the stored session", run: s.logout},
		{name: "profile", help: "show the signed-in user", run: s.profile},
		{name: "view", usage: "all|recommended", help: "switch between all spots and recommendations", run: s.view},
		{name: "spots", help: "list spots with the current filter and sort", run: s.spots},
		{name: "find", usage: "[text]", help: "filter the list by text; no text clears it", run: s.find},
		{name: "search", usage: "<text>", help: "ask the server to search spots", run: s.search},
		{name: "city", usage: "on|off", help: "limit the list to your destination city", run: s.city},
		{name: "sort", usage: "none|title|price|rating|reviewCount [asc|desc]", help: "sort the list", run: s.sortSpots},
		{name: "order", help: "flip the sort direction", run: s.order},
		{name: "add", usage: "<spot#>", help: "add a spot to the itinerary, or remove it if present", run: s.add},
		{name: "itinerary", help: "show the itinerary and total cost", run: s.itinerary},
		{name: "remove", usage: "<entry#>", help: "remove an itinerary entry", run: s.remove},
		{name: "move", usage: "<from#> <to#>", help: "reorder the itinerary", run: s.move},
		{name: "save", help: "save the itinerary to the server", run: s.save},
		{name: "book", usage: "<entry#>", help: "open the booking site and mark the entry booked", run: s.book},
		{name: "review", usage: "<entry#>", help: "review a booked entry", run: s.review},
		{name: "quick-review", usage: "<entry#>", help: "review a booked entry in three questions", run: s.quickReview},
		{name: "reviews", usage: "<spot#> | sort date|rating | order", help: "show reviews of a spot", run: s.reviews},
		{name: "prefs", usage: "[set a,b,c | save]", help: "show, change or save preferences", run: s.prefs},
		{name: "categories", help: "list preference categories", run: s.categories},
		{name: "cities", help: "list destination cities", run: s.cities},
	}
	m := make(map[string]*command, len(cmds))
	for _, c := range cmds {
		m[c.name] = c
	}
	return m
}

func (s *Shell) usage(name string) error {
	c := s.commands[name]
	return fmt.Errorf("%w: %s %s", errUsage, c.name, c.usage)
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return s.usage("login")
	}
	form := viewmodel.LoginForm{Email: args[0]}
	if len(args) == 2 {
		form.Password = args[1]
	} else {
		pw, err := s.term.prompter.Ask(ctx, "Password:")
		if err != nil {
			return err
		}
		form.Password = pw
	}
	if err := s.vm.Login(ctx, form); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Welcome, %s.\n", form.Email)
	return nil
}

func (s *Shell) signup(ctx context.Context, _ []string) error {
	ask := s.term.prompter.Ask
	var form viewmodel.SignupForm
	var err error

	if form.FullName, err = ask(ctx, "Full name:"); err != nil {
		return err
	}
	if form.Email, err = ask(ctx, "Email:"); err != nil {
		return err
	}
	if form.Password, err = ask(ctx, "Password:"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = ask(ctx, "Confirm password:"); err != nil {
		return err
	}

	cities := s.vm.Cities()
	s.printNumbered(cities)
	city, err := ask(ctx, "Destination city (name or number):")
	if err != nil {
		return err
	}
	form.DestinationCity = pick(cities, city)

	categories := s.vm.Categories()
	s.printNumbered(categories)
	cats, err := ask(ctx, "Categories (comma separated names or numbers):")
	if err != nil {
		return err
	}
	for _, c := range splitList(cats) {
		if p := pick(categories, c); p != "" && !slices.Contains(form.Categories, p) {
			form.Categories = append(form.Categories, p)
		}
	}

	if err := s.vm.Signup(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Account created. You are signed in.")
	return nil
}

func (s *Shell) logout(_ context.Context, _ []string) error {
	s.vm.Logout()
	fmt.Fprintln(s.out, "Signed out.")
	return nil
}

func (s *Shell) profile(_ context.Context, _ []string) error {
	st := s.vm.Snapshot()
	if !st.Session.Authenticated {
		fmt.Fprintln(s.out, "Not signed in.")
		return nil
	}
	tw := newTable(s.out)
	fmt.Fprintf(tw, "Email\t%s\n", st.Session.UserEmail)
	if st.Profile != nil {
		if st.Profile.FullName != "" {
			fmt.Fprintf(tw, "Name\t%s\n", st.Profile.FullName)
		}
		fmt.Fprintf(tw, "Destination\t%s\n", st.Profile.DestinationCity)
	}
	fmt.Fprintf(tw, "Preferences\t%s\n", strings.Join(st.Preferences, ", "))
	fmt.Fprintf(tw, "Itinerary\t%d entries, %s\n", len(st.Itinerary), syncLabel(st.ItinerarySynced))
	return tw.Flush()
}

func (s *Shell) view(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("view")
	}
	v, ok := viewmodel.ParseView(strings.ToLower(args[0]))
	if !ok {
		return s.usage("view")
	}
	if err := s.vm.SetView(ctx, v); err != nil {
		return err
	}
	return s.spots(ctx, nil)
}

func (s *Shell) spots(_ context.Context, _ []string) error {
	list := s.vm.FilteredExperiences()
	if len(list) == 0 {
		fmt.Fprintln(s.out, "No spots to show.")
		return nil
	}
	st := s.vm.Snapshot()
	s.renderSpots(list, st.Itinerary)
	return nil
}

func (s *Shell) find(ctx context.Context, args []string) error {
	s.vm.SetSearchQuery(strings.Join(args, " "))
	return s.spots(ctx, nil)
}

func (s *Shell) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return s.usage("search")
	}
	if err := s.vm.SearchRemote(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	return s.spots(ctx, nil)
}

func (s *Shell) city(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("city")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		s.vm.SetShowAllCities(false)
	case "off":
		s.vm.SetShowAllCities(true)
	default:
		return s.usage("city")
	}
	return s.spots(ctx, nil)
}

func (s *Shell) sortSpots(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return s.usage("sort")
	}
	by, ok := models.ParseSortField(args[0])
	if !ok {
		return s.usage("sort")
	}
	var order models.SortOrder
	if len(args) == 2 {
		switch o := models.SortOrder(strings.ToLower(args[1])); o {
		case models.SortAsc, models.SortDesc:
			order = o
		default:
			return s.usage("sort")
		}
	}
	s.vm.SetSort(by, order)
	return s.spots(ctx, nil)
}

func (s *Shell) order(ctx context.Context, _ []string) error {
	s.vm.ToggleSortOrder()
	return s.spots(ctx, nil)
}

func (s *Shell) add(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("add")
	}
	list := s.vm.FilteredExperiences()
	i, err := parseIndex(args[0], len(list), "spot")
	if err != nil {
		return err
	}
	spot := list[i]
	wasIn := s.vm.IsInItinerary(spot)
	if err := s.vm.ToggleItinerary(ctx, spot); err != nil {
		return err
	}
	if wasIn {
		fmt.Fprintf(s.out, "Removed %s from the itinerary.\n", spot.Title)
	} else {
		fmt.Fprintf(s.out, "Added %s to the itinerary.\n", spot.Title)
	}
	return nil
}

func (s *Shell) itinerary(_ context.Context, _ []string) error {
	st := s.vm.Snapshot()
	if len(st.Itinerary) == 0 {
		fmt.Fprintln(s.out, "Your itinerary is empty.")
		return nil
	}
	s.renderItinerary(st.Itinerary, st.ItinerarySynced)
	return nil
}

// entry resolves a 1-based itinerary number.
func (s *Shell) entry(arg string) (models.ItineraryEntry, error) {
	items := s.vm.Snapshot().Itinerary
	i, err := parseIndex(arg, len(items), "entry")
	if err != nil {
		return models.ItineraryEntry{}, err
	}
	return items[i], nil
}

func (s *Shell) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("remove")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return s.usage("remove")
	}
	return s.vm.RemoveFromItinerary(ctx, n-1)
}

func (s *Shell) move(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return s.usage("move")
	}
	n := len(s.vm.Snapshot().Itinerary)
	from, err := parseIndex(args[0], n, "entry")
	if err != nil {
		return err
	}
	to, err := parseIndex(args[1], n, "entry")
	if err != nil {
		return err
	}
	s.vm.DragStart(from)
	if err := s.vm.Drop(ctx, to); err != nil {
		return err
	}
	return s.itinerary(ctx, nil)
}

func (s *Shell) save(ctx context.Context, _ []string) error {
	if err := s.vm.PersistItinerary(ctx); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Itinerary saved.")
	return nil
}

func (s *Shell) book(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("book")
	}
	e, err := s.entry(args[0])
	if err != nil {
		return err
	}
	if err := s.vm.Book(ctx, e); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s marked as booked.\n", e.Title)
	return nil
}

// review walks the review dialog: offer, rating, comment, submit.
func (s *Shell) review(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("review")
	}
	e, err := s.entry(args[0])
	if err != nil {
		return err
	}
	if err := s.vm.OpenReviewFlow(e); err != nil {
		return err
	}

	yes, err := s.term.prompter.Confirm(ctx, "Would you like to leave a review for "+e.Title+"?")
	if err != nil {
		s.vm.CloseReviewFlow()
		return err
	}
	if !yes {
		return s.vm.SkipReview(ctx)
	}
	if err := s.vm.ProceedToReview(); err != nil {
		return err
	}

	answer, err := s.term.prompter.Ask(ctx, "Rating (1-5):")
	if err != nil {
		s.vm.CloseReviewFlow()
		return err
	}
	rating, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		s.vm.CloseReviewFlow()
		return fmt.Errorf("rating %q is not a number", answer)
	}
	s.vm.SetReviewRating(rating)

	comment, err := s.term.prompter.Ask(ctx, "Comment:")
	if err != nil {
		s.vm.CloseReviewFlow()
		return err
	}
	s.vm.SetReviewComment(comment)

	if err := s.vm.SubmitReview(ctx); err != nil {
		s.vm.CloseReviewFlow()
		return err
	}
	fmt.Fprintln(s.out, "Thank you for your review.")
	return nil
}

func (s *Shell) quickReview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("quick-review")
	}
	e, err := s.entry(args[0])
	if err != nil {
		return err
	}
	return s.vm.QuickReview(ctx, e)
}

func (s *Shell) reviews(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return s.usage("reviews")
	}
	switch strings.ToLower(args[0]) {
	case "sort":
		if len(args) != 2 {
			return s.usage("reviews")
		}
		switch f := models.ReviewSortField(strings.ToLower(args[1])); f {
		case models.ReviewSortDate, models.ReviewSortRating:
			s.vm.SetReviewsSort(f)
		default:
			return s.usage("reviews")
		}
	case "order":
		s.vm.ToggleReviewsSortOrder()
	default:
		list := s.vm.FilteredExperiences()
		i, err := parseIndex(args[0], len(list), "spot")
		if err != nil {
			return err
		}
		if err := s.vm.LoadReviews(ctx, list[i]); err != nil {
			return err
		}
	}
	st := s.vm.Snapshot()
	if !st.Reviews.Open || st.Reviews.Spot == nil {
		return errors.New("no reviews loaded; use: reviews <spot#>")
	}
	s.renderReviews(st.Reviews.Spot.Title, s.vm.SortedReviews())
	return nil
}

func (s *Shell) prefs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		st := s.vm.Snapshot()
		state := ""
		if st.PreferencesChanged {
			state = " (unsaved)"
		}
		fmt.Fprintf(s.out, "Preferences%s: %s\n", state, strings.Join(st.Preferences, ", "))
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "set":
		categories := s.vm.Categories()
		var prefs []string
		for _, c := range splitList(strings.Join(args[1:], " ")) {
			if p := pick(categories, c); p != "" && !slices.Contains(prefs, p) {
				prefs = append(prefs, p)
			}
		}
		s.vm.SetPreferences(prefs)
		return s.prefs(ctx, nil)
	case "save":
		return s.vm.SavePreferences(ctx)
	}
	return s.usage("prefs")
}

func (s *Shell) categories(_ context.Context, _ []string) error {
	s.printNumbered(s.vm.Categories())
	return nil
}

func (s *Shell) cities(_ context.Context, _ []string) error {
	s.printNumbered(s.vm.Cities())
	return nil
}

// parseIndex turns a 1-based number into an index into a list of n items.
func parseIndex(arg string, n int, what string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid %s number", arg, what)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("no %s %d; the list has %d", what, i, n)
	}
	return i - 1, nil
}

// pick resolves a name (case-insensitive) or 1-based number against
// choices. Unknown input returns "".
func pick(choices []string, in string) string {
	in = strings.TrimSpace(in)
	if n, err := strconv.Atoi(in); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1]
		}
		return ""
	}
	for _, c := range choices {
		if strings.EqualFold(c, in) {
			return c
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
