package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"pwquick/internal/audiograph"
	"pwquick/internal/services"
)

const defaultKeyword = "default"

func foldEqual(a, b string) bool {
	folder := cases.Fold()
	return folder.String(strings.TrimSpace(a)) == folder.String(strings.TrimSpace(b))
}

// resolveSink maps a user argument to a sink: the "default" keyword, a numeric
// id, an exact node name, a case-insensitive description, then the best fuzzy
// match over descriptions and names.
func resolveSink(snap *audiograph.Snapshot, arg string) (audiograph.Sink, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return audiograph.Sink{}, services.Wrap(services.ErrValidation, "resolve", "sink", "sink argument is empty", nil)
	}

	if strings.EqualFold(arg, defaultKeyword) {
		id, ok := snap.DefaultSinkID()
		if !ok {
			return audiograph.Sink{}, services.Wrap(services.ErrNotFound, "resolve", "sink", "no default sink is set", nil)
		}
		sink, _ := snap.Sink(id)
		return sink, nil
	}

	if id, err := strconv.Atoi(arg); err == nil {
		if sink, ok := snap.Sink(id); ok {
			return sink, nil
		}
		return audiograph.Sink{}, services.Wrap(services.ErrNotFound, "resolve", "sink", fmt.Sprintf("no sink with id %d", id), nil)
	}

	sinks := snap.Sinks()
	for _, sink := range sinks {
		if sink.Name == arg {
			return sink, nil
		}
	}
	for _, sink := range sinks {
		if foldEqual(sink.Description, arg) {
			return sink, nil
		}
	}

	if sink, ok := fuzzySink(sinks, arg); ok {
		return sink, nil
	}
	return audiograph.Sink{}, services.Wrap(services.ErrNotFound, "resolve", "sink", fmt.Sprintf("no sink matches %q", arg), nil)
}

// fuzzySink searches descriptions and names together; each sink contributes
// two candidates and the best-scoring one wins.
func fuzzySink(sinks []audiograph.Sink, pattern string) (audiograph.Sink, bool) {
	if len(sinks) == 0 {
		return audiograph.Sink{}, false
	}
	candidates := make([]string, 0, len(sinks)*2)
	for _, sink := range sinks {
		candidates = append(candidates, sink.Description, sink.Name)
	}
	matches := fuzzy.Find(pattern, candidates)
	if len(matches) == 0 {
		return audiograph.Sink{}, false
	}
	return sinks[matches[0].Index/2], true
}

// resolveProfile maps an index or a case-insensitive name/description to one
// of the enumerated profiles.
func resolveProfile(profiles []audiograph.Profile, arg string) (audiograph.Profile, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return audiograph.Profile{}, services.Wrap(services.ErrValidation, "resolve", "profile", "profile argument is empty", nil)
	}
	if index, err := strconv.Atoi(arg); err == nil {
		for _, profile := range profiles {
			if profile.Index == index {
				return profile, nil
			}
		}
		return audiograph.Profile{}, services.Wrap(services.ErrNotFound, "resolve", "profile", fmt.Sprintf("no profile with index %d", index), nil)
	}
	for _, profile := range profiles {
		if foldEqual(profile.Name, arg) || foldEqual(profile.Description, arg) {
			return profile, nil
		}
	}
	return audiograph.Profile{}, services.Wrap(services.ErrNotFound, "resolve", "profile", fmt.Sprintf("no profile matches %q", arg), nil)
}
