package resolution

// Curated product codes seen on real Trek invoices. Entries without a GTIP
// text fall back to the Turkish description at render time.
var catalogEntries = []CatalogEntry{
	// Fuel EXe series e-mountain bikes.
	{
		Code: "41476", Name: "Fuel EXe 5",
		Category: "Elektrikli Dağ Bisikleti", ProductType: "Elektrikli Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Trek Fuel EXe 5 - Elektrikli Dağ Bisikleti", Series: "Fuel EXe",
	},
	{
		Code: "41571", Name: "Fuel EXe 9.8",
		Category: "Elektrikli Dağ Bisikleti", ProductType: "Elektrikli Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Trek Fuel EXe 9.8 - Elektrikli Dağ Bisikleti", Series: "Fuel EXe",
	},
	{
		Code: "41526", Name: "Fuel EXe 9.7",
		Category: "Elektrikli Dağ Bisikleti", ProductType: "Elektrikli Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Trek Fuel EXe 9.7 - Elektrikli Dağ Bisikleti", Series: "Fuel EXe",
	},
	{
		Code: "41554", Name: "Fuel EXe 8 XT",
		Category: "Elektrikli Dağ Bisikleti", ProductType: "Elektrikli Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Trek Fuel EXe 8 XT - Elektrikli Dağ Bisikleti", Series: "Fuel EXe",
	},
	{
		Code: "47285", Name: "Fuel EXe 9.9 X0 AXS T-Type",
		Category: "Elektrikli Dağ Bisikleti", ProductType: "Elektrikli Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Trek Fuel EXe 9.9 X0 AXS T-Type - Elektrikli Dağ Bisikleti", Series: "Fuel EXe",
	},
	{
		Code: "5329018", Name: "Trek Elektrikli Bisiklet",
		Category: "Elektrikli Bisiklet", ProductType: "Elektrikli Bisiklet", Subcategory: "Şehir/Hibrit Bisiklet",
		Turkish: "Elektrikli bisiklet, elektrik motorlu, pedal çevirmeli",
		GTIP:    "Elektrikli bisiklet (elektrik motorlu, pedal çevirmeli)", Series: "Elektrikli",
	},
	{
		Code: "5320011", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Genel Bisiklet",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Bisiklet",
	},

	// Accessories and parts with tariff-ready descriptions.
	{
		Code: "7001", Name: "Trek İç Lastik",
		Category: "İç Lastik", ProductType: "İç Lastik", Subcategory: "Bisiklet Parçası",
		Turkish: "Bisiklet iç lastiği, kauçuk", GTIP: "Bisiklet iç lastiği (kauçuk)", Series: "Parça",
	},
	{
		Code: "8001", Name: "Trek Anahtar Takımı",
		Category: "Anahtar Takımı", ProductType: "Anahtar Takımı", Subcategory: "Bisiklet Aleti",
		Turkish: "El aletleri takımı, bisiklet bakım ve onarım için",
		GTIP:    "El aletleri takımı (bisiklet bakım için)", Series: "Alet",
	},
	{
		Code: "9001", Name: "Trek Bisiklet Kask",
		Category: "Bisiklet Kask", ProductType: "Kask", Subcategory: "Güvenlik Ekipmanı",
		Turkish: "Koruyucu kask, bisiklet için, plastik/polikarbon",
		GTIP:    "Koruyucu kask (bisiklet için)", Series: "Güvenlik",
	},
	{
		Code: "6001", Name: "Trek Zincir",
		Category: "Zincir", ProductType: "Zincir", Subcategory: "Bisiklet Parçası",
		Turkish: "Bisiklet zinciri, çelik, güç aktarım parçası",
		GTIP:    "Bisiklet zinciri (çelik)", Series: "Parça",
	},
	{
		Code: "5001", Name: "Trek Fren Balata",
		Category: "Fren Balata", ProductType: "Fren Balata", Subcategory: "Bisiklet Parçası",
		Turkish: "Bisiklet fren balata, fren sistemi parçası",
		GTIP:    "Bisiklet fren balata", Series: "Parça",
	},
	{
		Code: "5283888", Name: "Bontrager Blendr Sattel Zubehörhalterung",
		Category: "Bisiklet Aksesuarı", ProductType: "Bisiklet Aksesuarı", Subcategory: "Aksesuar Tutucusu",
		Turkish: "Bisiklet aksesuar tutucusu, plastik/metal, sele altı montaj",
		GTIP:    "Bisiklet aksesuar tutucusu", Series: "Bontrager",
	},
	{
		Code: "5328107", Name: "Trek Bisiklet Kadrosu",
		Category: "Bisiklet Kadrosu", ProductType: "Bisiklet Kadrosu", Subcategory: "Çerçeve",
		Turkish: "Bisiklet kadrosu/çerçevesi, alüminyum/karbon",
		GTIP:    "Bisiklet kadrosu (çerçeve)", Series: "Trek",
	},
	{
		Code: "5328106", Name: "Trek Bisiklet Kadrosu",
		Category: "Bisiklet Kadrosu", ProductType: "Bisiklet Kadrosu", Subcategory: "Çerçeve",
		Turkish: "Bisiklet kadrosu/çerçevesi", GTIP: "Bisiklet kadrosu (çerçeve)", Series: "Trek",
	},
	{
		Code: "5323998", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5320014", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Genel Bisiklet",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5320013", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Genel Bisiklet",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5320313", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Genel Bisiklet",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5320733", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Genel Bisiklet",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5323525", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5323529", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5323524", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5323523", Name: "Trek Bisiklet",
		Category: "Bisiklet", ProductType: "Bisiklet", Subcategory: "Dağ Bisikleti",
		Turkish: "Bisiklet (motor olmayan, pedal çevirmeli)",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},
	{
		Code: "5336210", Name: "Trek Özel Bisiklet",
		Category: "Trek Özel Ürün", ProductType: "Bisiklet", Subcategory: "Özel Seri",
		Turkish: "Trek özel seri bisiklet",
		GTIP:    "Bisiklet (motor olmayan, pedal çevirmeli)", Series: "Trek",
	},

	// Bontrager W-series accessories.
	{
		Code: "W5271067", Name: "Bontrager Aksesuar",
		Category: "Bisiklet Aksesuarı", ProductType: "Bisiklet Aksesuarı", Subcategory: "Bontrager Aksesuar",
		Turkish: "Bontrager marka bisiklet aksesuarı", GTIP: "Bisiklet aksesuarı", Series: "Bontrager",
	},
	{
		Code: "W5256074", Name: "Bontrager Aksesuar",
		Category: "Bisiklet Aksesuarı", ProductType: "Bisiklet Aksesuarı", Subcategory: "Bontrager Aksesuar",
		Turkish: "Bontrager marka bisiklet aksesuarı", GTIP: "Bisiklet aksesuarı", Series: "Bontrager",
	},
	{
		Code: "W5284217", Name: "Bontrager Aksesuar",
		Category: "Bisiklet Aksesuarı", ProductType: "Bisiklet Aksesuarı", Subcategory: "Bontrager Aksesuar",
		Turkish: "Bontrager marka bisiklet aksesuarı", GTIP: "Bisiklet aksesuarı", Series: "Bontrager",
	},
	{
		Code: "W524900", Name: "Bontrager Parça",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Bontrager Parça",
		Turkish: "Bontrager marka bisiklet parçası", GTIP: "Bisiklet yedek parçası", Series: "Bontrager",
	},
	{
		Code: "W524901", Name: "Bontrager Parça",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Bontrager Parça",
		Turkish: "Bontrager marka bisiklet parçası", GTIP: "Bisiklet yedek parçası", Series: "Bontrager",
	},

	// 52xx-series parts.
	{
		Code: "5298292", Name: "Trek Bisiklet Işığı",
		Category: "Bisiklet Aydınlatması", ProductType: "Bisiklet Işığı", Subcategory: "Aydınlatma",
		Turkish: "Bisiklet ışığı/aydınlatma sistemi",
		GTIP:    "Bisiklet ışığı (aydınlatma ekipmanı)", Series: "Trek",
	},
	{
		Code: "5274583", Name: "Trek Bisiklet Parçası",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Yedek Parça",
		Turkish: "Bisiklet yedek parçası/bileşeni", GTIP: "Bisiklet yedek parçası", Series: "Trek",
	},
	{
		Code: "5266373", Name: "Trek Bisiklet Parçası",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Yedek Parça",
		Turkish: "Bisiklet yedek parçası/bileşeni", GTIP: "Bisiklet yedek parçası", Series: "Trek",
	},

	// Six-digit part codes.
	{
		Code: "601257", Name: "Trek/Bontrager Parça",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Yedek Parça",
		Turkish: "Bisiklet yedek parçası", GTIP: "Bisiklet yedek parçası", Series: "Trek",
	},
	{
		Code: "563711", Name: "Trek/Bontrager Parça",
		Category: "Bisiklet Parçası", ProductType: "Bisiklet Parçası", Subcategory: "Yedek Parça",
		Turkish: "Bisiklet yedek parçası", GTIP: "Bisiklet yedek parçası", Series: "Trek",
	},
	{
		Code: "581633", Name: "Bontrager Aeolus Comp Sele 145mm Siyah",
		Category: "Bisiklet Selesi", ProductType: "Bisiklet Selesi", Subcategory: "Sele",
		Turkish: "Bisiklet selesi, 145mm genişlik, siyah renk",
		GTIP:    "Bisiklet selesi (oturma yeri)", Series: "Bontrager",
	},
	{
		Code: "W322175", Name: "Trek Schaltauge MTB - Vites Kulağı",
		Category: "Bisiklet Parçası", ProductType: "Vites Kulağı", Subcategory: "MTB Parçası",
		Turkish: "Trek dağ bisikleti vites kulağı (schaltauge)",
		GTIP:    "Bisiklet vites sistemi parçası", Series: "Trek",
	},
	{
		Code: "W5271424", Name: "Trek Universal Derailleur Hanger - Vites Kulağı",
		Category: "Bisiklet Parçası", ProductType: "Vites Kulağı", Subcategory: "Derailleur Hanger",
		Turkish: "Trek universal vites kulağı (derailleur hanger)",
		GTIP:    "Bisiklet vites sistemi parçası", Series: "Trek",
	},
}
