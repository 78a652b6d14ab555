package randomname

// Word lists are restricted to lowercase ASCII letters so every generated
// name satisfies the nickname charset without post-processing.

var adjectives = []string{
	"brave", "calm", "eager", "gentle", "happy", "jolly", "kind",
	"lively", "proud", "silly", "witty", "mighty", "swift", "sharp",
	"bold", "daring", "bright", "clever", "curious", "fearless",
	"focused", "gallant", "golden", "humble", "keen", "loyal",
	"merry", "nimble", "noble", "patient", "quick", "quiet",
	"rapid", "serene", "silent", "sly", "solid", "stout",
	"sturdy", "sunny", "tidy", "vivid", "warm", "wise", "zesty",
}

var nouns = []string{
	"otter", "tiger", "eagle", "dolphin", "panther", "lion", "panda",
	"koala", "whale", "wolf", "falcon", "rabbit", "bear", "fox",
	"owl", "leopard", "cheetah", "badger", "moose", "gazelle",
	"cougar", "jaguar", "bison", "beaver", "heron", "crane",
	"raven", "robin", "salmon", "seal", "sparrow", "squid",
	"swan", "toucan", "trout", "turtle", "walrus", "wombat",
	"lynx", "gecko", "ferret", "finch", "hawk", "ibis", "kestrel",
}
