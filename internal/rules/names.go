package rules

// DefaultNameRules returns the curated name decision list.
//
// Order is significant: the first rule whose keywords all appear in a name
// wins. Specific compound terms are listed before the generic single words
// they contain. Entries that repeat an earlier keyword are kept as authored;
// the earlier entry always wins.
func DefaultNameRules() []NameRule {
	out := make([]NameRule, len(defaultNameRules))
	copy(out, defaultNameRules)
	return out
}

var defaultNameRules = []NameRule{
	// Compound terms. Everything here must stay ahead of the single-word
	// rules further down.
	// Shelf-stable, canned and jarred goods
	{[]string{"stock"}, "pantry"},
	{[]string{"vegetable stock"}, "pantry"},
	{[]string{"chicken stock"}, "pantry"},
	{[]string{"beef stock"}, "pantry"},
	{[]string{"]chicken broth"}, "pantry"},
	{[]string{"]beef broth"}, "pantry"},
	{[]string{"]vegetable broth"}, "pantry"},
	{[]string{"bouillon"}, "pantry"},
	{[]string{"tomato sauce"}, "pantry"},
	{[]string{"tomato puree"}, "pantry"},
	{[]string{"sun-dried tomato"}, "pantry"},
	{[]string{"sundried tomato"}, "pantry"},
	{[]string{"sun dried tomato"}, "pantry"},
	{[]string{"canned tomato"}, "pantry"},
	{[]string{"diced tomato"}, "pantry"},
	{[]string{"crushed tomato"}, "pantry"},
	{[]string{"whole tomato"}, "pantry"},
	{[]string{"roasted pepper"}, "pantry"},
	{[]string{"artichoke heart"}, "pantry"},
	// oils before the bare "olive" rule below
	{[]string{"olive oil"}, "oil"},
	{[]string{"sesame oil"}, "oil"},
	{[]string{"coconut oil"}, "oil"},
	{[]string{"canola oil"}, "oil"},
	{[]string{"vegetable oil"}, "oil"},
	{[]string{"sunflower oil"}, "oil"},
	{[]string{"avocado oil"}, "oil"},
	{[]string{"truffle oil"}, "oil"},
	{[]string{"olive"}, "pantry"},
	{[]string{"caper"}, "pantry"},
	{[]string{"pickle"}, "pantry"},
	{[]string{"gherkin"}, "pantry"},
	{[]string{"coconut cream"}, "pantry"},
	{[]string{"coconut milk"}, "pantry"},
	{[]string{"anchovy paste"}, "pantry"},
	{[]string{"chipotle"}, "pantry"},
	{[]string{"harissa"}, "pantry"},
	{[]string{"gochujang"}, "pantry"},
	{[]string{"doubanjiang"}, "pantry"},
	{[]string{"doenjang"}, "pantry"},
	{[]string{"preserved mustard"}, "pantry"},
	{[]string{"sesame paste"}, "pantry"},
	{[]string{"dashi"}, "pantry"},
	{[]string{"bonito"}, "pantry"},
	{[]string{"kombu"}, "pantry"},
	{[]string{"nori"}, "pantry"},
	{[]string{"seaweed"}, "pantry"},
	{[]string{"dried shrimp"}, "pantry"},
	{[]string{"shrimp paste"}, "pantry"},
	{[]string{"fish paste"}, "pantry"},
	{[]string{"curry paste"}, "pantry"},
	{[]string{"bean paste"}, "pantry"},
	{[]string{"chili paste"}, "pantry"},
	{[]string{"miso"}, "pantry"},
	{[]string{"kimchi"}, "pantry"},
	{[]string{"tahini"}, "pantry"},
	{[]string{"pesto"}, "pantry"},
	{[]string{"hoisin"}, "condiment"},
	// Condiment aisle
	{[]string{"tomato ketchup"}, "condiment"},
	{[]string{"soy sauce"}, "condiment"},
	{[]string{"fish sauce"}, "condiment"},
	{[]string{"hot sauce"}, "condiment"},
	{[]string{"barbecue sauce"}, "condiment"},
	{[]string{"bbq sauce"}, "condiment"},
	{[]string{"teriyaki"}, "condiment"},
	{[]string{"steak sauce"}, "condiment"},
	{[]string{"hoisin"}, "condiment"},
	{[]string{"oyster sauce"}, "condiment"},
	{[]string{"worcestershire"}, "condiment"},
	{[]string{"sriracha"}, "condiment"},
	{[]string{"mustard"}, "condiment"},
	{[]string{"mayonnaise"}, "condiment"},
	{[]string{"ketchup"}, "condiment"},
	{[]string{"salsa"}, "condiment"},
	{[]string{"pesto"}, "condiment"},
	{[]string{"miso"}, "condiment"},
	{[]string{"tahini"}, "condiment"},
	{[]string{"sambal"}, "condiment"},
	{[]string{"chutney"}, "condiment"},
	{[]string{"relish"}, "condiment"},
	{[]string{"dressing"}, "condiment"},

	// Spreads
	{[]string{"peanut butter"}, "pantry"},
	{[]string{"almond butter"}, "pantry"},
	{[]string{"cashew butter"}, "pantry"},
	{[]string{"nutella"}, "pantry"},
	{[]string{"hazelnut spread"}, "pantry"},
	{[]string{"oyster mushroom sauce"}, "pantry"},
	{[]string{"starch water"}, "pantry"},
	{[]string{"stick rice flour"}, "pantry"},
	{[]string{"wakame"}, "pantry"},
	{[]string{"cream cheese"}, "cheese"},
	{[]string{"goat cheese"}, "cheese"},
	{[]string{"blue cheese"}, "cheese"},
	{[]string{"cottage cheese"}, "cheese"},

	// Plant milks
	{[]string{"almond milk"}, "pantry"},
	{[]string{"oat milk"}, "pantry"},
	{[]string{"soy milk"}, "pantry"},

	{[]string{"balsamic vinegar"}, "vinegar"},
	{[]string{"red wine vinegar"}, "vinegar"},
	{[]string{"white wine vinegar"}, "vinegar"},
	{[]string{"apple cider vinegar"}, "vinegar"},
	{[]string{"rice vinegar"}, "vinegar"},
	{[]string{"sherry vinegar"}, "vinegar"},

	{[]string{"lemon juice"}, "juice"},
	{[]string{"lime juice"}, "juice"},
	{[]string{"orange juice"}, "juice"},
	{[]string{"apple juice"}, "juice"},
	{[]string{"cranberry juice"}, "juice"},
	{[]string{"grapefruit juice"}, "juice"},
	{[]string{"pomegranate juice"}, "juice"},

	{[]string{"maple syrup"}, "sugar"},
	{[]string{"corn syrup"}, "sugar"},
	{[]string{"agave"}, "sugar"},
	{[]string{"molasses"}, "sugar"},
	{[]string{"vanilla extract"}, "sugar"},
	{[]string{"cocoa powder"}, "sugar"},

	{[]string{"baking powder"}, "leavening"},
	{[]string{"baking soda"}, "leavening"},
	{[]string{"bicarbonate"}, "leavening"},
	{[]string{"yeast"}, "leavening"},
	{[]string{"cream of tartar"}, "leavening"},
	{[]string{"gelatin"}, "leavening"},
	{[]string{"agar"}, "leavening"},
	{[]string{"pectin"}, "leavening"},

	{[]string{"bread flour"}, "flour"},
	{[]string{"all-purpose flour"}, "flour"},
	{[]string{"all purpose flour"}, "flour"},
	{[]string{"cake flour"}, "flour"},
	{[]string{"pastry flour"}, "flour"},
	{[]string{"self-raising flour"}, "flour"},
	{[]string{"self raising flour"}, "flour"},
	{[]string{"whole wheat flour"}, "flour"},
	{[]string{"vital wheat gluten"}, "flour"},
	{[]string{"wheat gluten"}, "flour"},
	{[]string{"vital gluten"}, "flour"},
	{[]string{"shortening"}, "flour"},
	{[]string{"cornstarch"}, "flour"},
	{[]string{"corn starch"}, "flour"},
	{[]string{"cornflour"}, "flour"},
	{[]string{"almond flour"}, "flour"},
	{[]string{"rice flour"}, "flour"},
	{[]string{"tapioca"}, "flour"},
	{[]string{"arrowroot"}, "flour"},
	{[]string{"semolina"}, "flour"},

	{[]string{"brown sugar"}, "sugar"},
	{[]string{"powdered sugar"}, "sugar"},
	{[]string{"icing sugar"}, "sugar"},
	{[]string{"confectioner"}, "sugar"},
	{[]string{"demerara"}, "sugar"},
	{[]string{"turbinado"}, "sugar"},
	{[]string{"muscovado"}, "sugar"},
	{[]string{"caster sugar"}, "sugar"},
	{[]string{"granulated sugar"}, "sugar"},

	{[]string{"dark chocolate"}, "sugar"},
	{[]string{"white chocolate"}, "sugar"},
	{[]string{"milk chocolate"}, "sugar"},
	{[]string{"chocolate chip"}, "sugar"},

	{[]string{"ground beef"}, "meat"},
	{[]string{"ground pork"}, "meat"},
	{[]string{"ground turkey"}, "poultry"},
	{[]string{"ground chicken"}, "poultry"},

	{[]string{"sweet potato"}, "produce"},
	{[]string{"green bean"}, "produce"},
	{[]string{"bell pepper"}, "produce"},

	// Fruit
	{[]string{"banana"}, "produce"},
	{[]string{"strawberry"}, "produce"},
	{[]string{"blueberry"}, "produce"},
	{[]string{"raspberry"}, "produce"},
	{[]string{"blackberry"}, "produce"},
	{[]string{"grape"}, "produce"},
	{[]string{"peach"}, "produce"},
	{[]string{"pear"}, "produce"},
	{[]string{"cherry"}, "produce"},
	{[]string{"plum"}, "produce"},
	{[]string{"watermelon"}, "produce"},
	{[]string{"cantaloupe"}, "produce"},
	{[]string{"honeydew"}, "produce"},
	{[]string{"mango"}, "produce"},
	{[]string{"pineapple"}, "produce"},
	{[]string{"kiwi"}, "produce"},
	{[]string{"papaya"}, "produce"},
	{[]string{"ya cai"}, "produce"},

	// Vegetables
	{[]string{"leek"}, "produce"},
	{[]string{"shiitake"}, "produce"},
	{[]string{"enoki"}, "produce"},
	{[]string{"portobello"}, "produce"},
	{[]string{"bok choy"}, "produce"},
	{[]string{"napa cabbage"}, "produce"},
	{[]string{"radish"}, "produce"},
	{[]string{"turnip"}, "produce"},
	{[]string{"beet"}, "produce"},
	{[]string{"watercress"}, "produce"},
	{[]string{"arugula"}, "produce"},
	{[]string{"endive"}, "produce"},
	{[]string{"radicchio"}, "produce"},
	{[]string{"rhubarb"}, "produce"},
	{[]string{"plantain"}, "produce"},
	{[]string{"fig"}, "produce"},
	{[]string{"guava"}, "produce"},
	{[]string{"lemon zest"}, "produce"},
	{[]string{"lime zest"}, "produce"},
	{[]string{"orange zest"}, "produce"},

	{[]string{"black bean"}, "legume"},
	{[]string{"kidney bean"}, "legume"},
	{[]string{"pinto bean"}, "legume"},
	{[]string{"navy bean"}, "legume"},
	{[]string{"chickpea"}, "legume"},
	{[]string{"lentil"}, "legume"},

	{[]string{"pine nut"}, "nut"},
	{[]string{"sesame seed"}, "nut"},
	{[]string{"sunflower seed"}, "nut"},
	{[]string{"pumpkin seed"}, "nut"},
	{[]string{"poppy seed"}, "nut"},
	{[]string{"flax seed"}, "nut"},
	{[]string{"chia seed"}, "nut"},

	{[]string{"red wine"}, "alcohol"},
	{[]string{"white wine"}, "alcohol"},
	{[]string{"rice wine"}, "alcohol"},

	{[]string{"kosher salt"}, "spice"},
	{[]string{"sea salt"}, "spice"},
	{[]string{"maldon salt"}, "spice"},
	{[]string{"fine salt"}, "spice"},
	{[]string{"table salt"}, "spice"},
	{[]string{"fleur de sel"}, "spice"},

	{[]string{"black pepper"}, "spice"},
	{[]string{"white pepper"}, "spice"},
	{[]string{"cayenne pepper"}, "spice"},
	{[]string{"chili flake"}, "spice"},
	{[]string{"red pepper flake"}, "spice"},
	{[]string{"chili powder"}, "spice"},
	{[]string{"curry powder"}, "spice"},
	{[]string{"garam masala"}, "spice"},
	{[]string{"italian seasoning"}, "spice"},
	{[]string{"five spice"}, "spice"},
	{[]string{"onion powder"}, "spice"},
	{[]string{"garlic powder"}, "spice"},

	{[]string{"heavy cream"}, "dairy"},
	{[]string{"whipping cream"}, "dairy"},
	{[]string{"sour cream"}, "dairy"},
	{[]string{"half and half"}, "dairy"},
	{[]string{"crème fraîche"}, "dairy"},
	{[]string{"creme fraiche"}, "dairy"},
	{[]string{"evaporated milk"}, "dairy"},
	{[]string{"condensed milk"}, "dairy"},
	{[]string{"buttermilk"}, "dairy"},

	// Single words

	// Alcohol
	{[]string{"wine"}, "alcohol"},
	{[]string{"beer"}, "alcohol"},
	{[]string{"ale"}, "alcohol"},
	{[]string{"lager"}, "alcohol"},
	{[]string{"stout"}, "alcohol"},
	{[]string{"brandy"}, "alcohol"},
	{[]string{"cognac"}, "alcohol"},
	{[]string{"rum"}, "alcohol"},
	{[]string{"vodka"}, "alcohol"},
	{[]string{"whiskey"}, "alcohol"},
	{[]string{"whisky"}, "alcohol"},
	{[]string{"bourbon"}, "alcohol"},
	{[]string{"tequila"}, "alcohol"},
	{[]string{"gin"}, "alcohol"},
	{[]string{"sake"}, "alcohol"},
	{[]string{"mirin"}, "alcohol"},
	{[]string{"sherry"}, "alcohol"},
	{[]string{"port"}, "alcohol"},
	{[]string{"marsala"}, "alcohol"},
	{[]string{"kahlua"}, "alcohol"},
	{[]string{"amaretto"}, "alcohol"},
	{[]string{"grappa"}, "alcohol"},
	{[]string{"absinthe"}, "alcohol"},
	{[]string{"vermouth"}, "alcohol"},
	{[]string{"champagne"}, "alcohol"},
	{[]string{"prosecco"}, "alcohol"},
	{[]string{"cider"}, "alcohol"},
	{[]string{"mead"}, "alcohol"},
	{[]string{"liqueur"}, "alcohol"},
	{[]string{"campari"}, "alcohol"},
	{[]string{"aperol"}, "alcohol"},
	{[]string{"cointreau"}, "alcohol"},
	{[]string{"grand marnier"}, "alcohol"},
	{[]string{"triple sec"}, "alcohol"},
	{[]string{"limoncello"}, "alcohol"},
	{[]string{"chartreuse"}, "alcohol"},

	// Soda
	{[]string{"cola"}, "pop"},
	{[]string{"soda"}, "pop"},
	{[]string{"tonic"}, "pop"},
	{[]string{"sprite"}, "pop"},
	{[]string{"ginger ale"}, "pop"},

	{[]string{"coffee"}, "beverage"},
	{[]string{"tea"}, "beverage"},
	{[]string{"broth"}, "beverage"},
	{[]string{"stock"}, "beverage"},
	{[]string{"water"}, "beverage"},

	{[]string{"juice"}, "juice"},

	// Meat
	{[]string{"beef"}, "meat"},
	{[]string{"steak"}, "meat"},
	{[]string{"pork"}, "meat"},
	{[]string{"bacon"}, "meat"},
	{[]string{"ham"}, "meat"},
	{[]string{"prosciutto"}, "meat"},
	{[]string{"pancetta"}, "meat"},
	{[]string{"guanciale"}, "meat"},
	{[]string{"chorizo"}, "meat"},
	{[]string{"sausage"}, "meat"},
	{[]string{"salami"}, "meat"},
	{[]string{"pepperoni"}, "meat"},
	{[]string{"lamb"}, "meat"},
	{[]string{"veal"}, "meat"},
	{[]string{"venison"}, "meat"},
	{[]string{"bison"}, "meat"},
	{[]string{"rabbit"}, "meat"},
	{[]string{"lardon"}, "meat"},
	{[]string{"bresaola"}, "meat"},
	{[]string{"nduja"}, "meat"},
	{[]string{"short ribs"}, "meat"},
	{[]string{"slab ribs"}, "meat"},
	{[]string{"spare ribs"}, "meat"},
	{[]string{"beef ribs"}, "meat"},
	{[]string{"pork ribs"}, "meat"},
	{[]string{"oxtail"}, "meat"},
	{[]string{"tongue"}, "meat"},
	{[]string{"liver"}, "meat"},
	{[]string{"kidney"}, "meat"},
	{[]string{"heart"}, "meat"},
	{[]string{"offal"}, "meat"},

	{[]string{"chicken"}, "poultry"},
	{[]string{"turkey"}, "poultry"},
	{[]string{"duck"}, "poultry"},
	{[]string{"goose"}, "poultry"},
	{[]string{"quail"}, "poultry"},

	// Seafood
	{[]string{"salmon"}, "seafood"},
	{[]string{"tuna"}, "seafood"},
	{[]string{"shrimp"}, "seafood"},
	{[]string{"prawn"}, "seafood"},
	{[]string{"crab"}, "seafood"},
	{[]string{"lobster"}, "seafood"},
	{[]string{"scallop"}, "seafood"},
	{[]string{"mussel"}, "seafood"},
	{[]string{"clam"}, "seafood"},
	{[]string{"oyster"}, "seafood"},
	{[]string{"anchovy"}, "seafood"},
	{[]string{"sardine"}, "seafood"},
	{[]string{"cod"}, "seafood"},
	{[]string{"halibut"}, "seafood"},
	{[]string{"tilapia"}, "seafood"},
	{[]string{"trout"}, "seafood"},
	{[]string{"bass"}, "seafood"},
	{[]string{"mackerel"}, "seafood"},
	{[]string{"squid"}, "seafood"},
	{[]string{"calamari"}, "seafood"},
	{[]string{"octopus"}, "seafood"},
	{[]string{"fish"}, "seafood"},
	{[]string{"seafood"}, "seafood"},
	{[]string{"crustacean"}, "seafood"},

	{[]string{"egg"}, "egg"},

	// Cheese
	{[]string{"cheese"}, "cheese"},
	{[]string{"cheddar"}, "cheese"},
	{[]string{"parmesan"}, "cheese"},
	{[]string{"parmigiano"}, "cheese"},
	{[]string{"mozzarella"}, "cheese"},
	{[]string{"gruyere"}, "cheese"},
	{[]string{"gruyère"}, "cheese"},
	{[]string{"feta"}, "cheese"},
	{[]string{"brie"}, "cheese"},
	{[]string{"camembert"}, "cheese"},
	{[]string{"gouda"}, "cheese"},
	{[]string{"ricotta"}, "cheese"},
	{[]string{"mascarpone"}, "cheese"},
	{[]string{"pecorino"}, "cheese"},
	{[]string{"emmental"}, "cheese"},
	{[]string{"havarti"}, "cheese"},
	{[]string{"provolone"}, "cheese"},
	{[]string{"halloumi"}, "cheese"},
	{[]string{"burrata"}, "cheese"},
	{[]string{"paneer"}, "cheese"},
	{[]string{"manchego"}, "cheese"},
	{[]string{"roquefort"}, "cheese"},
	{[]string{"gorgonzola"}, "cheese"},
	{[]string{"stilton"}, "cheese"},

	// Dairy
	{[]string{"milk"}, "dairy"},
	{[]string{"butter"}, "dairy"},
	{[]string{"cream"}, "dairy"},
	{[]string{"yogurt"}, "dairy"},
	{[]string{"yoghurt"}, "dairy"},
	{[]string{"dairy"}, "dairy"},
	{[]string{"ghee"}, "dairy"},

	// Grain and bread
	{[]string{"rice"}, "grain"},
	{[]string{"bread"}, "grain"},
	{[]string{"sourdough"}, "grain"},
	{[]string{"brioche"}, "grain"},
	{[]string{"ciabatta"}, "grain"},
	{[]string{"focaccia"}, "grain"},
	{[]string{"pita"}, "grain"},
	{[]string{"naan"}, "grain"},
	{[]string{"baguette"}, "grain"},
	{[]string{"oat"}, "grain"},
	{[]string{"quinoa"}, "grain"},
	{[]string{"barley"}, "grain"},
	{[]string{"couscous"}, "grain"},
	{[]string{"bulgur"}, "grain"},
	{[]string{"millet"}, "grain"},
	{[]string{"polenta"}, "grain"},
	{[]string{"grits"}, "grain"},
	{[]string{"breadcrumb"}, "grain"},
	{[]string{"panko"}, "grain"},
	{[]string{"tortilla"}, "grain"},
	{[]string{"cracker"}, "grain"},
	{[]string{"cereal"}, "grain"},
	{[]string{"granola"}, "grain"},

	// Pasta and noodles
	{[]string{"pasta"}, "pasta"},
	{[]string{"spaghetti"}, "pasta"},
	{[]string{"penne"}, "pasta"},
	{[]string{"rigatoni"}, "pasta"},
	{[]string{"linguine"}, "pasta"},
	{[]string{"fettuccine"}, "pasta"},
	{[]string{"noodle"}, "pasta"},
	{[]string{"lasagna"}, "pasta"},
	{[]string{"lasagne"}, "pasta"},
	{[]string{"macaroni"}, "pasta"},
	{[]string{"orzo"}, "pasta"},
	{[]string{"fusilli"}, "pasta"},
	{[]string{"farfalle"}, "pasta"},
	{[]string{"tagliatelle"}, "pasta"},
	{[]string{"gnocchi"}, "pasta"},
	{[]string{"ramen"}, "pasta"},
	{[]string{"udon"}, "pasta"},
	{[]string{"soba"}, "pasta"},
	{[]string{"vermicelli"}, "pasta"},
	{[]string{"ravioli"}, "pasta"},
	{[]string{"tortellini"}, "pasta"},

	// Legumes
	{[]string{"bean"}, "legume"},
	{[]string{"lentil"}, "legume"},
	{[]string{"chickpea"}, "legume"},
	// tofu is shelved with dairy
	{[]string{"tofu"}, "dairy"},
	{[]string{"tempeh"}, "legume"},
	{[]string{"edamame"}, "legume"},

	// Nuts
	{[]string{"almond"}, "nut"},
	{[]string{"walnut"}, "nut"},
	{[]string{"pecan"}, "nut"},
	{[]string{"cashew"}, "nut"},
	{[]string{"pistachio"}, "nut"},
	{[]string{"peanut"}, "nut"},
	{[]string{"hazelnut"}, "nut"},
	{[]string{"macadamia"}, "nut"},
	{[]string{"chestnut"}, "nut"},
	{[]string{"coconut"}, "nut"},

	// Spices and herbs
	{[]string{"salt"}, "spice"},
	{[]string{"pepper"}, "spice"},
	{[]string{"cumin"}, "spice"},
	{[]string{"paprika"}, "spice"},
	{[]string{"cayenne"}, "spice"},
	{[]string{"cinnamon"}, "spice"},
	{[]string{"nutmeg"}, "spice"},
	{[]string{"oregano"}, "spice"},
	{[]string{"turmeric"}, "spice"},
	{[]string{"coriander"}, "spice"},
	{[]string{"cardamom"}, "spice"},
	{[]string{"clove"}, "spice"},
	{[]string{"allspice"}, "spice"},
	{[]string{"saffron"}, "spice"},
	{[]string{"anise"}, "spice"},
	{[]string{"fennel"}, "spice"},
	{[]string{"tsaoko"}, "spice"},
	{[]string{"dill"}, "spice"},
	{[]string{"thyme"}, "spice"},
	{[]string{"rosemary"}, "spice"},
	{[]string{"sage"}, "spice"},
	{[]string{"basil"}, "spice"},
	{[]string{"parsley"}, "spice"},
	{[]string{"cilantro"}, "spice"},
	{[]string{"mint"}, "spice"},
	{[]string{"tarragon"}, "spice"},
	{[]string{"chive"}, "spice"},
	{[]string{"bay leaf"}, "spice"},
	{[]string{"bay leaves"}, "spice"},
	{[]string{"marjoram"}, "spice"},
	{[]string{"five spice"}, "spice"},
	{[]string{"gochugaru"}, "spice"},
	{[]string{"sumac"}, "spice"},
	{[]string{"zaatar"}, "spice"},
	{[]string{"za'atar"}, "spice"},
	{[]string{"lemongrass"}, "spice"},
	{[]string{"fenugreek"}, "spice"},
	{[]string{"msg"}, "spice"},
	{[]string{"spice"}, "spice"},
	{[]string{"seasoning"}, "spice"},
	{[]string{"herb"}, "spice"},

	// Generic condiment terms
	{[]string{"sauce"}, "condiment"},
	{[]string{"paste"}, "condiment"},
	{[]string{"marinade"}, "condiment"},
	{[]string{"glaze"}, "condiment"},

	{[]string{"oil"}, "oil"},

	{[]string{"vinegar"}, "vinegar"},

	{[]string{"flour"}, "flour"},
	{[]string{"starch"}, "flour"},

	// Sweeteners and confectionery
	{[]string{"sugar"}, "sugar"},
	{[]string{"honey"}, "sugar"},
	{[]string{"syrup"}, "sugar"},
	{[]string{"chocolate"}, "sugar"},
	{[]string{"candy"}, "sugar"},
	{[]string{"caramel"}, "sugar"},
	{[]string{"jam"}, "sugar"},
	{[]string{"jelly"}, "sugar"},
	{[]string{"marmalade"}, "sugar"},
	{[]string{"vanilla"}, "sugar"},
}
