package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testOffers = []Offer{
	{ID: "1", ProfessionalName: "Juan Pérez", Title: "Instalación Eléctrica Completa", Category: "Electricidad"},
	{ID: "2", ProfessionalName: "María González", Title: "Pintura de Interiores", Category: "Pintura"},
	{ID: "3", ProfessionalName: "Carlos Rodríguez", Title: "Reparación de Plomería", Category: "Plomería", Description: "fugas y cañerías"},
	{ID: "4", ProfessionalName: "Ana Martínez", Title: "Carpintería a Medida", Category: "Carpintería"},
}

func offerIDs(offers []Offer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}

func TestFilterOffers(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{name: "all", want: []string{"1", "2", "3", "4"}},
		{name: "category exact", category: "Pintura", want: []string{"2"}},
		{name: "unknown category", category: "Jardinería", want: []string{}},
		{name: "title substring", query: "pintura", want: []string{"2"}},
		{name: "description substring ranks after title", query: "fugas", want: []string{"3"}},
		{name: "fuzzy word", query: "plomeria", want: []string{"3"}},
		{name: "no match", query: "zzzz", want: []string{}},
		{name: "category and query", category: "Electricidad", query: "pintura", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offerIDs(FilterOffers(testOffers, tt.category, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterOffers mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterOffersRanksTitleFirst(t *testing.T) {
	offers := []Offer{
		{ID: "a", Title: "Limpieza", Description: "incluye pintura"},
		{ID: "b", Title: "Pintura"},
	}
	got := offerIDs(FilterOffers(offers, AllCategories, "pintura"))
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestOfferCategories(t *testing.T) {
	got := OfferCategories(append(testOffers, Offer{ID: "5", Category: "Pintura"}))
	want := []string{"Electricidad", "Pintura", "Plomería", "Carpintería"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholderImage(t *testing.T) {
	if got := PlaceholderImage(""); got != "https://source.unsplash.com/800x600/?construction,work" {
		t.Fatalf("default placeholder = %q", got)
	}
	if got := PlaceholderImage("Pintura"); got != "https://source.unsplash.com/800x600/?Pintura,work" {
		t.Fatalf("category placeholder = %q", got)
	}
}
