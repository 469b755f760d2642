package usecase

import "github.com/celiogix/backend/internal/domain"

// sourceTerms pairs a gluten source with the label spellings that indicate it
type sourceTerms struct {
	source domain.GlutenSource
	terms  []string
}

// glutenSourceTerms is scanned in this order; order determines the order of
// detected sources and problematic ingredients in results.
var glutenSourceTerms = []sourceTerms{
	{domain.SourceWheat, []string{
		"wheat", "wheat flour", "wheat starch", "wheat protein", "wheat bran",
		"wheat germ", "wheat berries", "durum wheat", "hard wheat", "soft wheat",
		"wheat gluten", "vital wheat gluten", "wheat malt", "wheat dextrin",
		"wheat fiber", "wheat grass", "wheat grass juice", "wheat grass powder",
	}},
	{domain.SourceRye, []string{
		"rye", "rye flour", "rye bread", "rye meal", "rye malt", "rye starch",
	}},
	{domain.SourceBarley, []string{
		"barley", "barley flour", "barley malt", "barley extract", "barley starch",
		"barley protein", "malt", "malt extract", "malt syrup", "malt flavoring",
		"malt vinegar", "maltodextrin", "barley grass", "barley grass juice",
	}},
	{domain.SourceOats, []string{
		"oats", "oat flour", "oat bran", "oat fiber", "oat protein", "oat starch",
		"oat extract", "oatmeal", "rolled oats", "steel cut oats", "quick oats",
	}},
	{domain.SourceTriticale, []string{
		"triticale", "triticale flour", "triticale starch",
	}},
	{domain.SourceSpelt, []string{
		"spelt", "spelt flour", "spelt starch", "spelt protein",
	}},
	{domain.SourceKamut, []string{
		"kamut", "kamut flour", "kamut starch",
	}},
	{domain.SourceFarro, []string{
		"farro", "farro flour", "emmer", "emmer flour",
	}},
	{domain.SourceBulgur, []string{
		"bulgur", "bulgur wheat", "cracked wheat",
	}},
	{domain.SourceCouscous, []string{
		"couscous", "pearl couscous", "israeli couscous",
	}},
}

// hiddenGlutenTerms may or may not indicate gluten depending on sourcing.
// Entries that are also benign (tapioca starch, xanthan gum, ...) must be
// spelled exactly as in safeIngredientTerms so the safe override applies.
var hiddenGlutenTerms = []string{
	"modified food starch", "food starch", "modified starch", "vegetable starch",
	"corn starch", "potato starch", "tapioca starch",
	"natural flavoring", "artificial flavoring", "flavoring", "natural flavors",
	"artificial flavors", "spices", "seasoning", "seasonings", "spice blend",
	"hydrolyzed vegetable protein", "hydrolyzed plant protein", "hvp",
	"textured vegetable protein", "tvp", "vegetable protein",
	"caramel color", "caramel coloring", "caramel",
	"dextrin", "dextrose", "glucose syrup", "corn syrup",
	"soy sauce", "teriyaki sauce", "worcestershire sauce",
	"miso", "tempeh", "seitan",
	"baking powder", "baking soda", "yeast extract",
	"mono and diglycerides", "lecithin",
	"gum arabic", "xanthan gum", "guar gum", "locust bean gum",
	"rice vinegar", "distilled vinegar", "white vinegar",
	"vanilla extract", "vanilla flavoring",
	"smoke flavoring", "liquid smoke",
	"broth", "stock", "bouillon", "soup base",
	"thickener", "thickening agent", "binding agent",
}

// safeIngredientTerms are naturally gluten-free ingredients
var safeIngredientTerms = []string{
	"rice", "rice flour", "rice starch", "rice bran",
	"corn", "corn flour", "cornmeal", "corn starch", "corn syrup",
	"potato", "potato flour", "potato starch", "potato flakes",
	"tapioca", "tapioca flour", "tapioca starch",
	"quinoa", "quinoa flour", "quinoa flakes",
	"buckwheat", "buckwheat flour", "buckwheat groats",
	"amaranth", "amaranth flour",
	"millet", "millet flour",
	"sorghum", "sorghum flour",
	"teff", "teff flour",
	"arrowroot", "arrowroot flour", "arrowroot starch",
	"cassava", "cassava flour", "yuca",
	"coconut", "coconut flour", "coconut oil",
	"almond", "almond flour", "almond meal",
	"walnut", "walnut flour",
	"pecan", "pecan flour",
	"hazelnut", "hazelnut flour",
	"sunflower seeds", "sunflower seed flour",
	"pumpkin seeds", "pumpkin seed flour",
	"flax seeds", "flax meal", "flaxseed",
	"chia seeds", "chia flour",
	"hemp seeds", "hemp flour",
	"psyllium husk", "psyllium powder",
	"xanthan gum", "guar gum", "locust bean gum",
	"baking soda", "baking powder (aluminum free)",
	"cream of tartar", "tartaric acid",
	"salt", "sea salt", "kosher salt",
	"sugar", "brown sugar", "coconut sugar", "maple syrup",
	"honey", "agave nectar", "stevia", "erythritol",
	"cocoa powder", "chocolate", "cacao",
	"vanilla extract", "vanilla bean",
	"cinnamon", "nutmeg", "ginger", "turmeric",
	"garlic", "onion", "lemon", "lime", "orange",
}

// certificationKeywords cover both gluten-free claims and allergen advisories
var certificationKeywords = []string{
	"gluten free", "gluten-free", "gf", "celiac safe",
	"certified gluten free", "certified gluten-free",
	"gfco certified", "gfco", "gluten free certification organization",
	"nsf gluten free", "nsf certified gluten free",
	"beyond celiac", "celiac disease foundation",
	"may contain gluten", "processed in facility with wheat",
	"made in facility that processes wheat", "may contain wheat",
	"processed on shared equipment", "shared equipment",
	"manufactured in facility that processes wheat",
}

// manufacturingRiskTerms describe shared-equipment and cross-contact conditions
var manufacturingRiskTerms = []string{
	"processed in facility with wheat", "made in facility that processes wheat",
	"may contain wheat", "processed on shared equipment",
	"shared equipment", "manufactured in facility that processes wheat",
	"may contain gluten", "processed in facility with gluten",
	"made on shared equipment with wheat", "cross contamination",
	"facility also processes wheat", "equipment also used for wheat",
	"may be processed on equipment that also processes wheat",
}

// glutenFreeAlternatives maps common problematic ingredients to substitutes
var glutenFreeAlternatives = map[string][]string{
	"wheat flour":  {"rice flour", "almond flour", "coconut flour", "tapioca flour"},
	"wheat starch": {"corn starch", "potato starch", "tapioca starch"},
	"soy sauce":    {"tamari (gluten-free)", "coconut aminos", "gluten-free soy sauce"},
	"malt vinegar": {"apple cider vinegar", "white vinegar", "rice vinegar"},
	"beer":         {"gluten-free beer", "cider", "wine", "spirits"},
	"breadcrumbs":  {"gluten-free breadcrumbs", "almond meal", "coconut flakes"},
	"pasta":        {"rice pasta", "quinoa pasta", "corn pasta", "zucchini noodles"},
	"couscous":     {"quinoa", "rice", "millet", "buckwheat groats"},
}
