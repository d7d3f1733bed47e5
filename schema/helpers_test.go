package schema

func fairphoneCataloger() *Root {
	data := NewCatalogerData(AboutCataloger{
		Description: Ptr("Test Cataloger"),
		ID:          "test",
		Name:        "Tester",
		Variant:     CatalogStore,
		Website:     "https://www.example.com/",
	})
	data.Producers = append(data.Producers, CatalogProducer{
		ID:    "fairphone",
		IDs:   ProducerIDs{Domains: List("fairphone.com"), Wiki: List("Q5627400")},
		Names: []string{"Fairphone"},
	})
	data.Products = append(data.Products, CatalogProduct{
		Categorisation: &ProductCategorisation{Categories: []ProductCategory{"smartphone"}},
		ID:             "fairphone-5",
		IDs:            ProductIDs{EAN: List("8718819372523"), GTIN: List(), Wiki: List("Q122817432")},
		Names:          []string{"Fairphone 5"},
		Shopping: Shopping{
			{Description: "Fairphone 5 on Amazon", ID: "B0CHMMP2QV", Shop: ShopAmazon},
			{Description: "Fairphone 5 in the Fairphone shop", ID: "fairphone-5", Shop: ShopFairphone},
		},
	})
	return NewRoot("Fairphone catalog", "0.0.1", data)
}
