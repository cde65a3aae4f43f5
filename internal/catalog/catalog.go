// Package catalog содержит справочники услуг и единиц измерения прачечной.
package catalog

import "slices"

var (
	services = []string{
		"Wash & Fold",
		"Dry Cleaning",
		"Ironing",
		"Express",
		"Stain Removal",
		"Bedding",
	}

	units = []string{
		"Kg",
		"Items",
		"Sets",
	}
)

// Services возвращает копию списка услуг в фиксированном порядке.
func Services() []string {
	return slices.Clone(services)
}

// Units возвращает копию списка единиц измерения.
func Units() []string {
	return slices.Clone(units)
}

// IsValidService проверяет, что услуга есть в справочнике. Сравнение точное.
func IsValidService(s string) bool {
	return slices.Contains(services, s)
}

// IsValidUnit проверяет, что единица измерения есть в справочнике.
func IsValidUnit(u string) bool {
	return slices.Contains(units, u)
}
