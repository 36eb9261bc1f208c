package dashboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current seed manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// SeedManifest is a YAML document describing the catalog loaded at startup.
type SeedManifest struct {
	Version   string     `json:"version" yaml:"version"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Products  []Product  `json:"products" yaml:"products"`
	Customers []Customer `json:"customers" yaml:"customers"`
	Orders    []Order    `json:"orders" yaml:"orders"`
	Source    string     `json:"-" yaml:"-"`
}

// Catalog returns the manifest records as a catalog.
func (doc *SeedManifest) Catalog() Catalog {
	return Catalog{Products: doc.Products, Customers: doc.Customers, Orders: doc.Orders}.Clone()
}

// NewSeedManifest wraps a catalog for dumping.
func NewSeedManifest(name string, c Catalog) *SeedManifest {
	c = c.Clone()
	return &SeedManifest{
		Version:   ManifestVersion,
		Name:      name,
		Products:  c.Products,
		Customers: c.Customers,
		Orders:    c.Orders,
	}
}

// ReadSeedManifest loads a manifest file from disk.
func ReadSeedManifest(path string) (*SeedManifest, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("dashboard: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeSeedManifest(f)
	if err != nil {
		return nil, fmt.Errorf("dashboard: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeSeedManifest reads a manifest from any reader.
func DecodeSeedManifest(r io.Reader) (*SeedManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc SeedManifest
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dashboard: manifest is empty")
		}
		return nil, fmt.Errorf("dashboard: parse manifest: %w", err)
	}
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeSeedManifest writes the manifest as YAML.
func EncodeSeedManifest(w io.Writer, doc *SeedManifest) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("dashboard: encode manifest: %w", err)
	}
	return encoder.Close()
}

// Validate checks versions, ids, enum values, and stock consistency.
func (doc *SeedManifest) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("dashboard: unsupported manifest version %q", doc.Version)
	}
	seen := map[string]struct{}{}
	unique := func(kind, id string, idx int) error {
		if id == "" {
			return fmt.Errorf("dashboard: manifest %s at index %d is missing id", kind, idx)
		}
		key := kind + ":" + id
		if _, ok := seen[key]; ok {
			return fmt.Errorf("dashboard: manifest duplicates %s id %s: %w", kind, id, ErrDuplicate)
		}
		seen[key] = struct{}{}
		return nil
	}
	for i, p := range doc.Products {
		if err := unique(EntityProduct, p.ID, i); err != nil {
			return err
		}
		if _, err := ParseCategory(string(p.Category)); err != nil {
			return fmt.Errorf("dashboard: manifest product %s: %w", p.ID, err)
		}
		if _, err := ParseStockStatus(string(p.Status)); err != nil {
			return fmt.Errorf("dashboard: manifest product %s: %w", p.ID, err)
		}
		if err := CheckStockConsistency(p); err != nil {
			return fmt.Errorf("dashboard: manifest product %s: %w", p.ID, err)
		}
	}
	for i, c := range doc.Customers {
		if err := unique(EntityCustomer, c.ID, i); err != nil {
			return err
		}
		if _, err := ParseCustomerStatus(string(c.Status)); err != nil {
			return fmt.Errorf("dashboard: manifest customer %s: %w", c.ID, err)
		}
	}
	for i, o := range doc.Orders {
		if err := unique(EntityOrder, o.ID, i); err != nil {
			return err
		}
		if _, err := ParseOrderStatus(string(o.Status)); err != nil {
			return fmt.Errorf("dashboard: manifest order %s: %w", o.ID, err)
		}
		if _, err := ParsePaymentStatus(string(o.PaymentStatus)); err != nil {
			return fmt.Errorf("dashboard: manifest order %s: %w", o.ID, err)
		}
	}
	return nil
}
