package catalog

// starterProducts is the fixed catalog installed by Seed on an empty store.
// Prices are Jamaican dollars.
func starterProducts() []Product {
	return []Product{
		// Inverters
		{
			Name:         "Deye 6kW Hybrid Inverter",
			Category:     CategoryInverters,
			Description:  "Deye-SUN-6k-SG01LP1-US hybrid solar inverter. Perfect for residential solar installations with 6kW capacity.",
			RegularPrice: 250000,
			SalePrice:    245000,
			ImageURL:     "https://images.pexels.com/photos/9875409/pexels-photo-9875409.jpeg",
			Specs: Specs{
				{Name: "power", Value: "6kW"},
				{Name: "type", Value: "Hybrid"},
				{Name: "model", Value: "SG01LP1-US"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 8kW Hybrid Inverter",
			Category:     CategoryInverters,
			Description:  "Deye-SUN-8k-SG01LP1-US hybrid solar inverter. Ideal for medium-sized homes with higher energy demands.",
			RegularPrice: 265000,
			SalePrice:    259000,
			ImageURL:     "https://images.pexels.com/photos/9875409/pexels-photo-9875409.jpeg",
			Specs: Specs{
				{Name: "power", Value: "8kW"},
				{Name: "type", Value: "Hybrid"},
				{Name: "model", Value: "SG01LP1-US"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 10kW Hybrid Inverter",
			Category:     CategoryInverters,
			Description:  "Deye-SUN-10k-SG01LP1-US hybrid solar inverter. High-capacity solution for larger residential or small commercial use.",
			RegularPrice: 300000,
			SalePrice:    294000,
			ImageURL:     "https://images.pexels.com/photos/9875409/pexels-photo-9875409.jpeg",
			Specs: Specs{
				{Name: "power", Value: "10kW"},
				{Name: "type", Value: "Hybrid"},
				{Name: "model", Value: "SG01LP1-US"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 12kW Hybrid Inverter",
			Category:     CategoryInverters,
			Description:  "Deye-SUN-12k-SG01LP1-US hybrid solar inverter. Our most powerful inverter for maximum energy independence.",
			RegularPrice: 325000,
			SalePrice:    318000,
			ImageURL:     "https://images.pexels.com/photos/9875409/pexels-photo-9875409.jpeg",
			Specs: Specs{
				{Name: "power", Value: "12kW"},
				{Name: "type", Value: "Hybrid"},
				{Name: "model", Value: "SG01LP1-US"},
			},
			InStock: true,
		},
		// Batteries - BSL
		{
			Name:         "BSL 5kWh Rack Battery",
			Category:     CategoryBatteries,
			Description:  "BSL-B-LFP48-100E 5kWh Rack Mount LiFePO4 Battery. Reliable energy storage with long cycle life.",
			RegularPrice: 165000,
			SalePrice:    162000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "5kWh"},
				{Name: "type", Value: "LiFePO4"},
				{Name: "mount", Value: "Rack"},
			},
			InStock: true,
		},
		{
			Name:         "BSL 5kWh Rack Brackets",
			Category:     CategoryBatteries,
			Description:  "BSL-B-LFP48-100E 5kWh Rack Brackets. Professional mounting solution for BSL batteries.",
			RegularPrice: 3500,
			SalePrice:    3400,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "compatibility", Value: "BSL 5kWh"},
				{Name: "type", Value: "Mounting Bracket"},
			},
			InStock: true,
		},
		{
			Name:         "BSL 10kWh Rack Battery",
			Category:     CategoryBatteries,
			Description:  "BSL-B-LFP48-200E 10kWh Rack Mount LiFePO4 Battery. Double capacity for extended backup power.",
			RegularPrice: 250000,
			SalePrice:    245000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "10kWh"},
				{Name: "type", Value: "LiFePO4"},
				{Name: "mount", Value: "Rack"},
			},
			InStock: true,
		},
		{
			Name:         "BSL 10kWh Rack Brackets",
			Category:     CategoryBatteries,
			Description:  "BSL-B-LFP48-200E 10kWh Rack Brackets. Secure mounting for larger battery systems.",
			RegularPrice: 4500,
			SalePrice:    4400,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "compatibility", Value: "BSL 10kWh"},
				{Name: "type", Value: "Mounting Bracket"},
			},
			InStock: true,
		},
		{
			Name:         "BSL Li-Pro 10.24kWh Wall Battery",
			Category:     CategoryBatteries,
			Description:  "BSL-Li-Pro 10240 10.24kWh Wall Mount Battery. Sleek wall-mounted design for space efficiency.",
			RegularPrice: 275000,
			SalePrice:    269000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "10.24kWh"},
				{Name: "type", Value: "LiFePO4"},
				{Name: "mount", Value: "Wall"},
			},
			InStock: true,
		},
		// Batteries - Deye
		{
			Name:         "Deye 5.12kWh Battery",
			Category:     CategoryBatteries,
			Description:  "Deye 5.12kWh LiFePO4 Battery. Compact and efficient energy storage solution.",
			RegularPrice: 135000,
			SalePrice:    132000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "5.12kWh"},
				{Name: "brand", Value: "Deye"},
				{Name: "type", Value: "LiFePO4"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 10.24kWh Battery",
			Category:     CategoryBatteries,
			Description:  "Deye 10.24kWh LiFePO4 Battery. Mid-range capacity for everyday household needs.",
			RegularPrice: 245000,
			SalePrice:    240000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "10.24kWh"},
				{Name: "brand", Value: "Deye"},
				{Name: "type", Value: "LiFePO4"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 12kWh Battery",
			Category:     CategoryBatteries,
			Description:  "Deye 12kWh LiFePO4 Battery. Extended capacity for larger homes.",
			RegularPrice: 310000,
			SalePrice:    304000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "12kWh"},
				{Name: "brand", Value: "Deye"},
				{Name: "type", Value: "LiFePO4"},
			},
			InStock: true,
		},
		{
			Name:         "Deye 16kWh Battery",
			Category:     CategoryBatteries,
			Description:  "Deye 16kWh LiFePO4 Battery. Maximum capacity for complete energy independence.",
			RegularPrice: 350000,
			SalePrice:    343000,
			ImageURL:     "https://images.pexels.com/photos/9875441/pexels-photo-9875441.jpeg",
			Specs: Specs{
				{Name: "capacity", Value: "16kWh"},
				{Name: "brand", Value: "Deye"},
				{Name: "type", Value: "LiFePO4"},
			},
			InStock: true,
		},
		// Panels
		{
			Name:         "450W SunPower Maxeon Bi-Facial Panel",
			Category:     CategoryPanels,
			Description:  "450w SunPower Maxeon Blk Bi-Facial solar panel. Premium efficiency with bifacial technology for maximum power generation.",
			RegularPrice: 15500,
			SalePrice:    15200,
			ImageURL:     "https://images.pexels.com/photos/9875423/pexels-photo-9875423.jpeg",
			Specs: Specs{
				{Name: "power", Value: "450W"},
				{Name: "type", Value: "Bi-Facial"},
				{Name: "brand", Value: "SunPower Maxeon"},
			},
			InStock: true,
		},
		{
			Name:         "545W SunPower Maxeon Bifacial Panel",
			Category:     CategoryPanels,
			Description:  "545W SunPower Maxeon Bifacial solar panel. High-output panel for maximum energy harvest.",
			RegularPrice: 16500,
			SalePrice:    16200,
			ImageURL:     "https://images.pexels.com/photos/9875423/pexels-photo-9875423.jpeg",
			Specs: Specs{
				{Name: "power", Value: "545W"},
				{Name: "type", Value: "Bi-Facial"},
				{Name: "brand", Value: "SunPower Maxeon"},
			},
			InStock: true,
		},
	}
}
