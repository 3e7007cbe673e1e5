// Package catalog holds the reference set of sightseeing places.
// The catalog is compiled-in literal data: it is never loaded from an
// external source, never mutated, and constant for the process lifetime.
package catalog

import (
	"slices"

	"sightseeing-route-service/internal/domain"
)

var places = []domain.Place{
	{Name: "Isaakievskij sobor", Duration: 5, Importance: 10},
	{Name: "Ermitazh", Duration: 8, Importance: 11},
	{Name: "Kunstkamera", Duration: 3.5, Importance: 4},
	{Name: "Petropavlovskaya krepost", Duration: 10, Importance: 7},
	{Name: "Leningradskij zoopark", Duration: 9, Importance: 15},
	{Name: "Mednyj vsadnik", Duration: 1, Importance: 17},
	{Name: "Kazanskij sobor", Duration: 4, Importance: 3},
	{Name: "Spas na Krovi", Duration: 2, Importance: 9},
	{Name: "Zimnij dvorec Petra I", Duration: 7, Importance: 12},
	{Name: "Zoologicheskij muzej", Duration: 5.5, Importance: 6},
	{Name: "Muzej oborony i blokady Leningrada", Duration: 2, Importance: 19},
	{Name: "Russkij muzej", Duration: 5, Importance: 8},
	{Name: "Navestit druzej", Duration: 12, Importance: 20},
	{Name: "Muzej voskovyh figur", Duration: 2, Importance: 13},
	{Name: "Literaturno-memorialnyj muzej F.M. Dostoevskogo", Duration: 4, Importance: 2},
	{Name: "Ekaterininskij dvorec", Duration: 1.5, Importance: 5},
	{Name: "Peterburgskij muzej kukol", Duration: 1, Importance: 14},
	{Name: "Muzej mikrominiatyury \"Russkij Levsha\"", Duration: 3, Importance: 18},
	{Name: "Vserossijskij muzej A.S.Pushkina i filialy", Duration: 6, Importance: 1},
	{Name: "Muzej sovremennogo iskusstva Erarta", Duration: 7, Importance: 16},
}

// Places returns a fresh copy of the catalog so callers may sort and slice
// it freely without affecting other callers.
func Places() []domain.Place {
	return slices.Clone(places)
}
