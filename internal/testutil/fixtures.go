package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/substrate/schema"
)

// FixedTime is the creation timestamp of every fixture header.
//
// Fixtures never read the wall clock, so golden files stay byte-identical
// between runs.
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CatalogerRoot returns a cataloger document listing one producer and one
// product. Each call returns a fresh value the caller may mutate.
func CatalogerRoot() *schema.Root {
	data := schema.NewCatalogerData(schema.AboutCataloger{
		Description: schema.Ptr("Test Cataloger"),
		ID:          "test",
		Name:        "Tester",
		Variant:     schema.CatalogStore,
		Website:     "https://www.example.com/",
	})
	data.Producers = append(data.Producers, schema.CatalogProducer{
		ID:    "fairphone",
		IDs:   schema.ProducerIDs{Domains: schema.List("fairphone.com"), Wiki: schema.List("Q5627400")},
		Names: []string{"Fairphone"},
	})
	data.Products = append(data.Products, schema.CatalogProduct{
		Categorisation: &schema.ProductCategorisation{Categories: []schema.ProductCategory{"smartphone"}},
		ID:             "fairphone-5",
		IDs:            schema.ProductIDs{EAN: schema.List("8718819372523"), GTIN: schema.List(), Wiki: schema.List("Q122817432")},
		Names:          []string{"Fairphone 5"},
		Shopping: schema.Shopping{
			{Description: "Fairphone 5 on Amazon", ID: "B0CHMMP2QV", Shop: schema.ShopAmazon},
			{Description: "Fairphone 5 in the Fairphone shop", ID: "fairphone-5", Shop: schema.ShopFairphone},
		},
	})

	root := schema.NewRoot("Fairphone catalog", "0.0.1", data)
	root.Meta.CreationTimestamp = schema.Ptr(FixedTime)
	return root
}

// ProducerRoot returns a producer document describing one product and
// one recognized reviewer.
func ProducerRoot() *schema.Root {
	data := schema.NewProducerData(schema.AboutProducer{
		ID:       "fairphone",
		IDs:      schema.ProducerIDs{Domains: schema.List("fairphone.com")},
		Name:     "Fairphone",
		Origins:  &schema.ProducerOrigins{Regions: &schema.RegionList{"NLD"}},
		Websites: []string{"https://www.fairphone.com/"},
	})
	data.Products = append(data.Products, schema.ProducerProduct{
		Availability:   &schema.ProductAvailability{Regions: schema.AllRegions()},
		Categorisation: schema.ProductCategorisation{Categories: []schema.ProductCategory{"smartphone"}},
		Description:    "Modular smartphone",
		ID:             "fairphone-5",
		IDs:            schema.ProductIDs{EAN: schema.List("8718819372523")},
		Names:          []string{"Fairphone 5"},
	})
	data.Reviewers = append(data.Reviewers, schema.ProducerReviewer{
		ID:    "tco",
		Names: []string{"TCO Certified"},
	})

	root := schema.NewRoot("Fairphone products", "0.0.1", data)
	root.Meta.CreationTimestamp = schema.Ptr(FixedTime)
	return root
}

// ReviewerRoot returns a reviewer document with one certified producer and
// one scored product.
func ReviewerRoot() *schema.Root {
	data := schema.NewReviewerData(schema.AboutReviewer{
		Description: "Sustainability certification for IT products",
		ID:          "tco",
		Name:        "TCO Certified",
		Reviews:     &schema.AboutReview{Score: &schema.AboutScoreReview{Div: 1, Max: 100, Min: 0}},
		Website:     "https://tcocertified.com/",
	})
	data.Producers = append(data.Producers, schema.ReviewProducer{
		ID:     "fairphone",
		IDs:    schema.ProducerIDs{Domains: schema.List("fairphone.com")},
		Names:  []string{"Fairphone"},
		Review: schema.Ptr(schema.Certified(true)),
	})
	data.Products = append(data.Products, schema.ReviewProduct{
		ID:      "fairphone-5",
		IDs:     schema.ProductIDs{EAN: schema.List("8718819372523")},
		Names:   []string{"Fairphone 5"},
		Reports: schema.Reports{{Title: schema.Ptr("Certificate"), URL: schema.Ptr("https://tcocertified.com/fairphone-5")}},
		Review:  schema.Ptr(schema.ScoreOf(87)),
		Summary: schema.Ptr("Meets every criterion"),
	})

	root := schema.NewRoot("TCO reviews", "0.0.1", data)
	root.Meta.CreationTimestamp = schema.Ptr(FixedTime)
	return root
}

// WriteFile writes content to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
