package labels

// Key names one UI label.
type Key string

const (
	TabHome      Key = "tab.home"
	TabCrops     Key = "tab.crops"
	TabCommunity Key = "tab.community"
	TabMap       Key = "tab.map"
	TabProfile   Key = "tab.profile"

	CropStatus         Key = "crops.status"
	WeatherForecast    Key = "crops.forecast"
	SprayingConditions Key = "spray.title"
	SprayOptimal       Key = "spray.optimal"
	SprayIdeal         Key = "spray.ideal"
	SprayUnfavorable   Key = "spray.unfavorable"

	IrrigationAdvisor        Key = "irrigation.title"
	SelectCrop               Key = "irrigation.select_crop"
	SelectSoil               Key = "irrigation.select_soil"
	LastWatered              Key = "irrigation.last_watered"
	GetRecommendation        Key = "irrigation.submit"
	WaterToday               Key = "irrigation.water_today"
	NoWaterNeeded            Key = "irrigation.no_water"
	ReasonRainExpected       Key = "irrigation.reason.rain_expected"
	ReasonMoistureSufficient Key = "irrigation.reason.moisture_sufficient"
	ReasonHotDry             Key = "irrigation.reason.hot_dry"

	CropWheat     Key = "crop.wheat"
	CropRice      Key = "crop.rice"
	CropMaize     Key = "crop.maize"
	CropCotton    Key = "crop.cotton"
	CropSugarcane Key = "crop.sugarcane"
	SoilSandy     Key = "soil.sandy"
	SoilLoam      Key = "soil.loam"
	SoilClay      Key = "soil.clay"

	SearchPlaceholder  Key = "map.search"
	CategoryFertilizer Key = "map.category.fertilizer"
	CategoryPesticide  Key = "map.category.pesticide"
	CategorySeed       Key = "map.category.seed"
	CategoryTool       Key = "map.category.tool"
	CategoryCollege    Key = "map.category.college"
	Call               Key = "map.call"
	Directions         Key = "map.directions"
	OpenNow            Key = "map.open_now"
	Courses            Key = "map.courses"

	Like    Key = "community.like"
	Comment Key = "community.comment"
	Share   Key = "community.share"
	Groups  Key = "community.groups"
	Members Key = "community.members"
)

// AllKeys is the complete key set each language must define.
var AllKeys = []Key{
	TabHome, TabCrops, TabCommunity, TabMap, TabProfile,
	CropStatus, WeatherForecast, SprayingConditions, SprayOptimal, SprayIdeal, SprayUnfavorable,
	IrrigationAdvisor, SelectCrop, SelectSoil, LastWatered, GetRecommendation,
	WaterToday, NoWaterNeeded, ReasonRainExpected, ReasonMoistureSufficient, ReasonHotDry,
	CropWheat, CropRice, CropMaize, CropCotton, CropSugarcane, SoilSandy, SoilLoam, SoilClay,
	SearchPlaceholder, CategoryFertilizer, CategoryPesticide, CategorySeed, CategoryTool, CategoryCollege,
	Call, Directions, OpenNow, Courses,
	Like, Comment, Share, Groups, Members,
}

// DefaultTable is the bundled English/Hindi label table.
var DefaultTable = Table{
	English: {
		TabHome:      "Home",
		TabCrops:     "Crops",
		TabCommunity: "Community",
		TabMap:       "Map",
		TabProfile:   "Profile",

		CropStatus:         "Crop status",
		WeatherForecast:    "7-day forecast",
		SprayingConditions: "Spraying conditions",
		SprayOptimal:       "Optimal",
		SprayIdeal:         "Ideal",
		SprayUnfavorable:   "Unfavorable",

		IrrigationAdvisor:        "Irrigation advisor",
		SelectCrop:               "Select crop",
		SelectSoil:               "Select soil type",
		LastWatered:              "Last watered on",
		GetRecommendation:        "Get recommendation",
		WaterToday:               "Water today",
		NoWaterNeeded:            "No watering needed",
		ReasonRainExpected:       "Rain is expected in the next two days",
		ReasonMoistureSufficient: "Soil moisture is still sufficient",
		ReasonHotDry:             "Hot and dry conditions",

		CropWheat:     "Wheat",
		CropRice:      "Rice",
		CropMaize:     "Maize",
		CropCotton:    "Cotton",
		CropSugarcane: "Sugarcane",
		SoilSandy:     "Sandy",
		SoilLoam:      "Loam",
		SoilClay:      "Clay",

		SearchPlaceholder:  "Search shops and colleges",
		CategoryFertilizer: "Fertilizer seller",
		CategoryPesticide:  "Pesticide seller",
		CategorySeed:       "Seed seller",
		CategoryTool:       "Tool seller",
		CategoryCollege:    "Agricultural college",
		Call:               "Call",
		Directions:         "Directions",
		OpenNow:            "Open now",
		Courses:            "Courses",

		Like:    "Like",
		Comment: "Comment",
		Share:   "Share",
		Groups:  "Groups",
		Members: "members",
	},
	Hindi: {
		TabHome:      "होम",
		TabCrops:     "फसलें",
		TabCommunity: "समुदाय",
		TabMap:       "नक्शा",
		TabProfile:   "प्रोफ़ाइल",

		CropStatus:         "फसल की स्थिति",
		WeatherForecast:    "7 दिन का पूर्वानुमान",
		SprayingConditions: "छिड़काव की स्थिति",
		SprayOptimal:       "सर्वोत्तम",
		SprayIdeal:         "उपयुक्त",
		SprayUnfavorable:   "प्रतिकूल",

		IrrigationAdvisor:        "सिंचाई सलाहकार",
		SelectCrop:               "फसल चुनें",
		SelectSoil:               "मिट्टी का प्रकार चुनें",
		LastWatered:              "अंतिम सिंचाई की तारीख",
		GetRecommendation:        "सलाह प्राप्त करें",
		WaterToday:               "आज सिंचाई करें",
		NoWaterNeeded:            "सिंचाई की आवश्यकता नहीं",
		ReasonRainExpected:       "अगले दो दिनों में बारिश की संभावना है",
		ReasonMoistureSufficient: "मिट्टी में पर्याप्त नमी है",
		ReasonHotDry:             "गर्म और शुष्क मौसम",

		CropWheat:     "गेहूं",
		CropRice:      "धान",
		CropMaize:     "मक्का",
		CropCotton:    "कपास",
		CropSugarcane: "गन्ना",
		SoilSandy:     "रेतीली",
		SoilLoam:      "दोमट",
		SoilClay:      "चिकनी",

		SearchPlaceholder:  "दुकानें और कॉलेज खोजें",
		CategoryFertilizer: "उर्वरक विक्रेता",
		CategoryPesticide:  "कीटनाशक विक्रेता",
		CategorySeed:       "बीज विक्रेता",
		CategoryTool:       "उपकरण विक्रेता",
		CategoryCollege:    "कृषि महाविद्यालय",
		Call:               "कॉल करें",
		Directions:         "रास्ता देखें",
		OpenNow:            "अभी खुला है",
		Courses:            "पाठ्यक्रम",

		Like:    "पसंद करें",
		Comment: "टिप्पणी",
		Share:   "साझा करें",
		Groups:  "समूह",
		Members: "सदस्य",
	},
}
