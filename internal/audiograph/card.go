package audiograph

import (
	"strconv"

	"pwquick/internal/pwdump"
)

const (
	cardMediaClass        = "Audio/Device"
	unknownProfileLabel   = "unknown"
	paramProfile          = "Profile"
	paramEnumProfile      = "EnumProfile"
	paramRoute            = "Route"
	paramEnumRoute        = "EnumRoute"
	availabilityNo        = "no"
	availabilityNoWrapped = "SPA_PARAM_AVAILABILITY_no"
)

// Card is a hardware audio device that owns sinks and offers profiles.
type Card struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// ActiveProfileDescription is "unknown" when the device reports no current profile.
	ActiveProfileDescription string `json:"active_profile"`
	ActiveProfileIndex       *int   `json:"active_profile_index"`

	params pwdump.Value
}

// Params returns the raw info.params bag profiles and routes are derived from.
func (c Card) Params() pwdump.Value {
	return c.params
}

// Profile is a named hardware configuration mode of a card.
type Profile struct {
	// Index is the key wpctl set-profile addresses the profile by.
	Index       int    `json:"index"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// Available is passed through from the dump without interpretation.
	Available any  `json:"available,omitempty"`
	Priority  *int `json:"priority,omitempty"`
}

// Label returns the most human-friendly name for the profile.
func (p Profile) Label() string {
	switch {
	case p.Description != "":
		return p.Description
	case p.Name != "":
		return p.Name
	default:
		return "Profile " + strconv.Itoa(p.Index)
	}
}

// Unavailable reports whether the availability marker explicitly says "no".
func (p Profile) Unavailable() bool {
	s, ok := p.Available.(string)
	return ok && (s == availabilityNo || s == availabilityNoWrapped)
}

// FindCard returns the Device object whose id equals cardID. A missing card is
// an expected outcome for virtual sinks, not an error.
func FindCard(dump pwdump.Dump, cardID int) (Card, bool) {
	obj, ok := dump.Find(pwdump.KindDevice, cardID)
	if !ok {
		return Card{}, false
	}
	return cardFromDevice(obj, cardID), true
}

// ExtractCards returns every audio device in dump order.
func ExtractCards(dump pwdump.Dump) []Card {
	var cards []Card
	for _, obj := range dump.OfKind(pwdump.KindDevice) {
		if class, _ := obj.Prop("media.class").String(); class != cardMediaClass {
			continue
		}
		id, ok := obj.ID()
		if !ok {
			continue
		}
		cards = append(cards, cardFromDevice(obj, id))
	}
	return cards
}

func cardFromDevice(obj pwdump.Object, id int) Card {
	props := obj.Props()
	card := Card{
		ID:                       id,
		ActiveProfileDescription: unknownProfileLabel,
		params:                   obj.ParamBag(),
	}
	card.Name, _ = props.Get("device.name").String()
	card.Description = props.Get("device.description").StringOr(props.Get("device.nick").StringOr(""))

	current := obj.Params(paramProfile)
	if len(current) > 0 {
		active := current[0]
		if index, ok := active.Get("index").Int(); ok {
			card.ActiveProfileIndex = &index
		}
		card.ActiveProfileDescription = active.Get("description").StringOr(
			active.Get("name").StringOr(unknownProfileLabel))
	}
	return card
}

// ListProfiles returns the card's enumerated profiles in source order. Entries
// without an integer index cannot be selected and are dropped.
func ListProfiles(card Card) []Profile {
	entries := card.params.Get(paramEnumProfile).List()
	profiles := make([]Profile, 0, len(entries))
	for _, entry := range entries {
		index, ok := entry.Get("index").Int()
		if !ok {
			continue
		}
		profile := Profile{
			Index:     index,
			Available: entry.Get("available").Raw(),
		}
		profile.Name, _ = entry.Get("name").String()
		profile.Description, _ = entry.Get("description").String()
		if priority, ok := entry.Get("priority").Int(); ok {
			profile.Priority = &priority
		}
		profiles = append(profiles, profile)
	}
	return profiles
}

// ActiveProfile returns the enumerated profile matching the card's active
// index. It reports false when no index was recorded or when the current and
// enumerated parameters disagree.
func ActiveProfile(card Card) (Profile, bool) {
	if card.ActiveProfileIndex == nil {
		return Profile{}, false
	}
	want := *card.ActiveProfileIndex
	for _, profile := range ListProfiles(card) {
		if profile.Index == want {
			return profile, true
		}
	}
	return Profile{}, false
}
