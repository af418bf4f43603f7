package models

// Known stream values of the shipped catalogs. Streams are an open set:
// a catalog may introduce others and filters compare them verbatim.
const (
	StreamCommerce = "Commerce"
	StreamMaths    = "Maths"
	StreamScience  = "Science"
)

// Brand identifies one of the institute catalogs bundled with the binary
type Brand string

const (
	BrandDeepjyoti Brand = "deepjyoti"
	BrandAnupama   Brand = "anupama"
	BrandChanakya  Brand = "chanakya"
)

// Valid reports whether b names a bundled catalog
func (b Brand) Valid() bool {
	switch b {
	case BrandDeepjyoti, BrandAnupama, BrandChanakya:
		return true
	}
	return false
}
