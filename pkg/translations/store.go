package translations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/opaltrip/opaltrip/pkg/trip"
)

// SupportedLanguages is the fixed set of language codes translations exist
// for. Anything else passes through untranslated.
var SupportedLanguages = []string{"en", "zh"}

// DefaultLanguage is the language station names arrive in from the upstream
// API. Requests for it never touch the translation tables or the cache.
const DefaultLanguage = "en"

var modeTableFiles = map[trip.TransportType]string{
	trip.TransportTypeTrain:         "train.json",
	trip.TransportTypeMetro:         "metro.json",
	trip.TransportTypeFerry:         "ferry.json",
	trip.TransportTypeLightRail:     "lightrail.json",
	trip.TransportTypeIntercityRail: "trainlink.json",
}

const commonTermsFile = "common-terms.json"

// Decorations stripped from a name segment before looking it up in the
// station tables.
var segmentSuffixes = []string{" Station", " stop", " wharf", " terminal"}

// translationTable maps a station name or common term to its per language
// translations.
type translationTable map[string]map[string]string

// Store holds the static station name translation tables, one per transport
// mode, plus a merged cross mode index and the shared common terms. It is
// loaded once at startup and read only afterwards; TranslateName is a pure
// function of its inputs.
type Store struct {
	modes  map[trip.TransportType]translationTable
	merged translationTable
	common translationTable
}

// NewStore loads every per mode station table and the common terms table
// from a directory.
func NewStore(dir string) (*Store, error) {
	store := &Store{
		modes:  map[trip.TransportType]translationTable{},
		merged: translationTable{},
	}

	for mode, filename := range modeTableFiles {
		table, err := loadTranslationTable(filepath.Join(dir, filename))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", filename, err)
		}

		store.modes[mode] = table

		for name, languages := range table {
			store.merged[name] = languages
		}
	}

	common, err := loadTranslationTable(filepath.Join(dir, commonTermsFile))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", commonTermsFile, err)
	}
	store.common = common

	return store, nil
}

func loadTranslationTable(path string) (translationTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var table translationTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}

	return table, nil
}

// TranslateName translates a possibly compound stop name into the requested
// language. Compound names are split on commas and each segment is handled
// separately, so "Central Station, Platform 16" translates the station name
// and the platform designation independently. Unknown names and unknown
// transport modes pass through untranslated.
func (store *Store) TranslateName(name string, mode trip.TransportType, language string) string {
	if name == "" || language == DefaultLanguage {
		return name
	}

	if !slices.Contains(SupportedLanguages, language) {
		return name
	}

	if _, found := store.modes[mode]; !found {
		log.Debug().Str("mode", string(mode)).Str("name", name).Msg("No translation table for transport mode")

		return name
	}

	segments := strings.Split(name, ",")
	translatedSegments := make([]string, 0, len(segments))

	for _, segment := range segments {
		translatedSegments = append(translatedSegments, store.translateSegment(strings.TrimSpace(segment), mode, language))
	}

	return strings.Join(translatedSegments, ", ")
}

func (store *Store) translateSegment(segment string, mode trip.TransportType, language string) string {
	loweredSegment := strings.ToLower(segment)

	if strings.Contains(loweredSegment, "platform") {
		if term, found := store.commonTerm("Platform", language); found {
			return term + digitsIn(segment)
		}

		return segment
	}

	// A wharf segment with a number is a berth designation. Without one the
	// word is part of the stop name itself and handled below.
	if strings.Contains(loweredSegment, "wharf") {
		if number := digitsIn(segment); number != "" {
			if term, found := store.commonTerm("Wharf", language); found {
				return term + number
			}

			return segment
		}
	}

	if strings.Contains(loweredSegment, "side") {
		if designator := sideDesignator(segment); designator != "" {
			if term, found := store.commonTerm("Side", language); found {
				return designator + term
			}

			return segment
		}
	}

	cleanedName := cleanSegment(segment)

	translated, found := store.lookupStation(mode, cleanedName, language)
	if !found {
		log.Debug().Str("name", cleanedName).Str("mode", string(mode)).Msg("No translation for station name")

		return segment
	}

	if strings.Contains(segment, "Station") {
		if suffix, found := store.commonTerm("Station", language); found {
			translated += suffix
		}
	}

	return translated
}

// lookupStation tries the mode's own table first and falls back to the
// merged cross mode index, as interchange names often only exist in one
// network's table.
func (store *Store) lookupStation(mode trip.TransportType, name string, language string) (string, bool) {
	if table, found := store.modes[mode]; found {
		if translated, found := table[name][language]; found && translated != "" {
			return translated, true
		}
	}

	if translated, found := store.merged[name][language]; found && translated != "" {
		return translated, true
	}

	return "", false
}

func (store *Store) commonTerm(term string, language string) (string, bool) {
	translated, found := store.common[term][language]

	return translated, found && translated != ""
}

func cleanSegment(segment string) string {
	cleaned := segment
	for _, suffix := range segmentSuffixes {
		cleaned = strings.ReplaceAll(cleaned, suffix, "")
	}

	return strings.TrimSpace(cleaned)
}

func digitsIn(value string) string {
	var digits strings.Builder

	for _, character := range value {
		if unicode.IsDigit(character) {
			digits.WriteRune(character)
		}
	}

	return digits.String()
}

// sideDesignator extracts the designator following a standalone "Side" word,
// for example "A" from "Side A".
func sideDesignator(segment string) string {
	fields := strings.Fields(segment)

	for index, field := range fields {
		if strings.EqualFold(field, "side") && index+1 < len(fields) {
			return fields[index+1]
		}
	}

	return ""
}

// TranslationsFor returns every per mode table entry for a cleaned station
// name. Used by the data inspection tooling.
func (store *Store) TranslationsFor(name string) map[trip.TransportType]map[string]string {
	entries := map[trip.TransportType]map[string]string{}

	for mode, table := range store.modes {
		if languages, found := table[name]; found {
			entries[mode] = languages
		}
	}

	return entries
}

// Count returns the number of distinct station names across all modes.
func (store *Store) Count() int {
	return len(store.merged)
}
