// Package wordlist provides the fixed 1024-word vocabulary used to encode
// share mnemonics, and the bijective mapping between words and their 10-bit
// symbol values.
//
// The vocabulary is sorted alphabetically with a unique 4-letter prefix per
// word, so a share mnemonic can be disambiguated from just its first four
// letters per word.
package wordlist

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Words is the ordered vocabulary; Words[i] encodes the 10-bit symbol i.
var Words = [1024]string{
	"academic", "acid", "acne", "acquire", "acrobat", "activity", "actress", "adapt",
	"adequate", "adjust", "admit", "adorn", "adult", "advance", "advocate", "afraid",
	"again", "agency", "agree", "aide", "aircraft", "airline", "airport", "ajar",
	"alarm", "album", "alcohol", "alien", "alive", "alpha", "already", "alto",
	"aluminum", "always", "amazing", "ambition", "amount", "amuse", "analysis", "anatomy",
	"ancestor", "ancient", "angel", "angry", "animal", "answer", "antenna", "anxiety",
	"apart", "aquatic", "arcade", "arena", "argue", "armed", "artist", "artwork",
	"aspect", "auction", "august", "aunt", "average", "aviation", "avoid", "award",
	"away", "axis", "axle", "badge", "balance", "bandit", "beam", "beard",
	"beaver", "become", "behavior", "being", "believe", "benefit", "beyond", "bike",
	"birthday", "bishop", "black", "blanket", "blessing", "blimp", "blind", "blue",
	"body", "boring", "born", "both", "bracelet", "branch", "brave", "breathe",
	"briefing", "broken", "brother", "browser", "bucket", "budget", "building", "bulb",
	"bulge", "bumpy", "bundle", "burden", "burning", "busy", "buyer", "cage",
	"calcium", "camera", "campus", "canyon", "capacity", "capital", "capture", "carbon",
	"cards", "careful", "cargo", "carpet", "carve", "category", "cause", "ceiling",
	"center", "ceramic", "champion", "change", "charity", "check", "chemical", "chest",
	"chew", "chubby", "cinema", "civil", "class", "clay", "cleanup", "client",
	"climate", "clinic", "clock", "clogs", "closet", "clothes", "club", "cluster",
	"coal", "coastal", "coding", "coffee", "column", "company", "corner", "costume",
	"counter", "course", "cover", "cowboy", "cradle", "craft", "crazy", "credit",
	"crew", "cricket", "criminal", "crisis", "critical", "crowd", "crunch", "crush",
	"crystal", "cubic", "cultural", "curious", "curly", "custody", "cylinder", "daisy",
	"damage", "dance", "daughter", "deadline", "deal", "debris", "debut", "decent",
	"decision", "declare", "decorate", "decrease", "deliver", "demand", "density", "deny",
	"depart", "depend", "depict", "deploy", "describe", "desert", "desire", "desktop",
	"destroy", "detailed", "detect", "device", "devote", "diagnose", "dictate", "diet",
	"digit", "dilemma", "diminish", "dining", "diploma", "disaster", "discuss", "disease",
	"dish", "display", "distance", "dive", "divorce", "document", "domain", "domestic",
	"dominant", "donate", "dough", "downtown", "dragon", "dramatic", "dream", "dress",
	"drift", "drink", "drove", "drug", "dryer", "duckling", "duke", "duration",
	"dwarf", "dynamic", "eager", "early", "earth", "easel", "easy", "echo",
	"eclipse", "ecology", "edge", "editor", "educate", "either", "elbow", "elder",
	"election", "elegant", "element", "elephant", "elevator", "elite", "else", "email",
	"emerald", "emission", "emperor", "emphasis", "employer", "empty", "endless", "endorse",
	"enemy", "energy", "enforce", "engage", "enjoy", "enlarge", "entrance", "envelope",
	"envy", "epidemic", "episode", "equation", "equip", "eraser", "erode", "escape",
	"estate", "estimate", "evaluate", "evening", "evidence", "evil", "evoke", "exact",
	"example", "exceed", "exchange", "exclude", "excuse", "execute", "exercise", "exhaust",
	"exotic", "expand", "expect", "explain", "express", "extend", "extra", "eyebrow",
	"facility", "fact", "failure", "faint", "fake", "false", "family", "famous",
	"fancy", "fangs", "fantasy", "fatal", "fatigue", "favorite", "fawn", "fiber",
	"fiction", "filter", "finance", "finger", "firefly", "firm", "fiscal", "fishing",
	"fitness", "flame", "flash", "flavor", "flea", "flexible", "flip", "float",
	"floral", "fluff", "focus", "foliage", "forbid", "force", "forecast", "forget",
	"formal", "fortune", "forward", "founder", "fraction", "fragment", "frequent", "freshman",
	"friar", "fridge", "friendly", "frost", "frozen", "fumes", "function", "furl",
	"furniture", "fused", "galaxy", "game", "garbage", "garden", "garlic", "gasoline",
	"gather", "general", "genius", "genre", "genuine", "geology", "gesture", "glad",
	"glance", "glasses", "glen", "glimpse", "goat", "golden", "graduate", "grant",
	"grasp", "gravity", "gray", "greatest", "grief", "grill", "grocery", "gross",
	"group", "grownup", "grumpy", "guard", "guest", "guilt", "guitar", "gums",
	"hairy", "hamster", "hand", "hanger", "harvest", "have", "hawk", "hazard",
	"headset", "health", "hearing", "heat", "helpful", "herald", "herd", "hesitate",
	"hobo", "holiday", "holy", "home", "hormone", "hospital", "hour", "huge",
	"human", "humidity", "hunting", "husband", "hush", "husky", "hybrid", "idea",
	"identify", "idle", "image", "impact", "impulse", "include", "income", "increase",
	"index", "indicate", "industry", "inform", "injury", "inmate", "insect", "inside",
	"install", "intend", "intimate", "into", "invasion", "involve", "iris", "island",
	"isolate", "item", "ivory", "jacket", "jerky", "jewelry", "join", "judicial",
	"juice", "jump", "junction", "junior", "junk", "justice", "kernel", "keyboard",
	"kidney", "kind", "kitchen", "kiwi", "knife", "knit", "laden", "ladle",
	"ladybug", "lair", "lamp", "language", "laptop", "large", "laser", "laundry",
	"lawsuit", "leader", "leaf", "learn", "leaves", "lecture", "legal", "legend",
	"legs", "length", "lesson", "level", "liberty", "license", "lift", "likely",
	"lilac", "lily", "lips", "listen", "literary", "living", "lizard", "loan",
	"lobe", "location", "losing", "loud", "loyalty", "luck", "lunar", "lunch",
	"lungs", "luxury", "lying", "lyrics", "machine", "magazine", "maiden", "mailman",
	"main", "makeup", "making", "mama", "manager", "mandate", "mansion", "manual",
	"marathon", "march", "market", "marvel", "mason", "material", "math", "maximum",
	"mayor", "meaning", "medal", "medical", "member", "memory", "mental", "merchant",
	"merit", "method", "metric", "midst", "mild", "military", "mineral", "minister",
	"miracle", "mixed", "mixture", "mobile", "modern", "modify", "moisture", "moment",
	"morning", "mortgage", "mother", "mountain", "mouse", "move", "much", "mule",
	"multiple", "muscle", "museum", "music", "mustang", "mutual", "myself", "nail",
	"names", "national", "nature", "navy", "necklace", "negative", "nervous", "network",
	"news", "nuclear", "numb", "numerous", "nylon", "oasis", "obesity", "object",
	"obtain", "ocean", "often", "olympic", "omit", "onion", "online", "only",
	"open", "oral", "orange", "orbit", "order", "ordinary", "organize", "ounce",
	"oven", "overall", "owner", "paces", "package", "paid", "painting", "pajamas",
	"pancake", "pants", "papa", "paper", "parcel", "parking", "party", "patent",
	"patrol", "payment", "payroll", "peaceful", "peanut", "peasant", "pecan", "penalty",
	"pencil", "percent", "perfect", "petition", "phantom", "pharmacy", "photo", "phrase",
	"physics", "pickup", "picture", "piece", "pile", "pink", "pipeline", "pistol",
	"pitch", "pixel", "plains", "plan", "plastic", "platform", "playoff", "pleasure",
	"plot", "plunge", "plus", "practice", "prayer", "preach", "predator", "pregnant",
	"premium", "prepare", "presence", "prevent", "priest", "primary", "priority", "prisoner",
	"privacy", "prize", "problem", "process", "profile", "program", "promise", "prospect",
	"provide", "prune", "public", "pulse", "pumps", "punish", "puny", "pupal",
	"purchase", "purple", "python", "quantity", "quarter", "quick", "racism", "railroad",
	"rainbow", "raisin", "random", "ranked", "rapids", "raspy", "reaction", "reading",
	"realize", "rebound", "rebuild", "recall", "receiver", "recover", "regret", "regular",
	"reject", "relate", "remember", "remind", "remove", "render", "renew", "repair",
	"repeat", "replace", "require", "rescue", "research", "resident", "response", "result",
	"retailer", "retreat", "reunion", "revenue", "review", "reward", "rhyme", "rhythm",
	"rich", "rival", "river", "robin", "rocky", "romance", "romp", "roster",
	"round", "royal", "ruin", "ruler", "rumor", "sack", "safari", "salon",
	"salt", "satisfy", "satoshi", "saver", "scandal", "scared", "scatter", "scene",
	"scholar", "science", "scout", "scramble", "screw", "script", "scroll", "scrub",
	"scuba", "secret", "security", "segment", "senior", "sequence", "series", "service",
	"session", "setting", "shadow", "shaft", "shame", "sharp", "shelter", "sheriff",
	"short", "should", "shrimp", "shrug", "sidewalk", "silent", "silver", "similar",
	"simple", "single", "sister", "skin", "skunk", "slavery", "sled", "slice",
	"slim", "slow", "slush", "smart", "smear", "smell", "smirk", "smith",
	"smoking", "smug", "snake", "snapshot", "sniff", "society", "software", "soldier",
	"solution", "soul", "source", "space", "spark", "speak", "species", "spelling",
	"spend", "spew", "spider", "spill", "spine", "spirit", "spit", "spray",
	"sprinkle", "square", "squeeze", "stadium", "staff", "standard", "starting", "station",
	"stay", "steady", "step", "stick", "stilt", "story", "strategy", "stream",
	"strike", "style", "subject", "submit", "sugar", "suitable", "sunlight", "superior",
	"surface", "surprise", "survive", "sweater", "swimming", "swing", "switch", "symbolic",
	"sympathy", "syndrome", "system", "tackle", "tactics", "tadpole", "talent", "task",
	"taste", "taught", "taxi", "teacher", "teammate", "teaspoon", "temple", "tenant",
	"tendency", "terminal", "testify", "texture", "thank", "theater", "theory", "therapy",
	"thorn", "threaten", "thumb", "thunder", "ticket", "tidy", "timber", "timely",
	"ting", "tofu", "together", "tolerate", "total", "toxic", "tracks", "traffic",
	"training", "transfer", "trash", "traveler", "treat", "trend", "trial", "tricycle",
	"trip", "triumph", "trouble", "true", "trust", "twice", "twin", "type",
	"typical", "ugly", "ultimate", "umbrella", "uncover", "undergo", "unfair", "unfold",
	"unhappy", "union", "unit", "unkind", "unknown", "unusual", "unwrap", "upgrade",
	"upstairs", "username", "usual", "utility", "valid", "valuable", "vampire", "vanish",
	"various", "vegan", "velvet", "venture", "verdict", "verify", "very", "veteran",
	"vexed", "victim", "video", "view", "vintage", "violence", "viral", "visitor",
	"visual", "vitamins", "vocal", "voice", "volume", "voter", "voting", "walnut",
	"warmth", "warn", "watch", "wavy", "wealthy", "weapon", "webcam", "welcome",
	"welfare", "western", "width", "wildlife", "window", "wine", "wireless", "wisdom",
	"withdraw", "wits", "wolf", "woman", "wonder", "work", "worthy", "wrap",
	"wrist", "writing", "wrote", "year", "yelp", "yield", "yoga", "zero",
}

// index maps a word to its 10-bit symbol value, built once at package init.
var index = func() map[string]uint32 {
	m := make(map[string]uint32, len(Words))
	for i, w := range Words {
		m[w] = uint32(i)
	}
	return m
}()

// ToSymbol returns the 10-bit symbol for word, or ok=false if word is not in
// the vocabulary.
func ToSymbol(word string) (uint32, bool) {
	s, ok := index[word]
	return s, ok
}

// ToWord returns the word for a 10-bit symbol. Panics if symbol is out of
// range; callers only pass symbols already known to be below 1024.
func ToWord(symbol uint32) string {
	return Words[symbol]
}

// Contains reports whether word is present in the vocabulary.
func Contains(word string) bool {
	_, ok := index[word]
	return ok
}

// MaxTypoDistance is the largest Levenshtein distance treated as a typo
// rather than an unrelated word.
const MaxTypoDistance = 2

// Suggest finds the closest share-mnemonic word to input by Levenshtein
// distance, or "" if nothing is close enough. Share words are drawn from
// this package's 1024-word vocabulary, distinct from the BIP-39 vocabulary
// mnemonic.SuggestWord searches.
func Suggest(input string) string {
	input = strings.ToLower(input)

	minDist := math.MaxInt
	var suggestion string

	for _, word := range Words {
		dist := levenshtein.ComputeDistance(input, word)
		if dist == 0 {
			return word
		}
		if dist < minDist {
			minDist = dist
			suggestion = word
		}
	}

	if minDist <= MaxTypoDistance {
		return suggestion
	}
	return ""
}
