package knowledge

// problemRules is ordered: a message matching several rules gets the first tag.
var problemRules = []ProblemRule{
	{
		Problem: Problem{
			Tag:      "wont turn on",
			Category: "hardware",
			Requires: []Field{FieldDeviceType, FieldBrand},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"won't turn on", "wont turn on", "not turning on", "won't power on", "wont power on", "won't start", "wont start", "no power"},
	},
	{
		Problem: Problem{
			Tag:      "blue screen",
			Category: "software",
			Requires: []Field{FieldOS},
			Subject:  FieldOS,
		},
		Patterns: []string{"blue screen", "bsod", "stop code"},
	},
	{
		Problem: Problem{
			Tag:      "overheating",
			Category: "hardware",
			Requires: []Field{FieldDeviceType},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"overheat", "too hot", "very hot", "heating up"},
	},
	{
		Problem: Problem{
			Tag:      "battery issue",
			Category: "hardware",
			Requires: []Field{FieldDeviceType, FieldBrand},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"battery", "not charging", "won't charge", "wont charge", "drains fast"},
	},
	{
		Problem: Problem{
			Tag:      "screen issue",
			Category: "hardware",
			Requires: []Field{FieldDeviceType},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"cracked screen", "screen flicker", "flickering", "black screen", "no display", "display problem"},
	},
	{
		Problem: Problem{
			Tag:      "network issue",
			Category: "network",
			Requires: []Field{FieldDeviceType},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"wifi", "wi-fi", "internet", "no connection", "can't connect", "cant connect", "network"},
	},
	{
		Problem: Problem{
			Tag:      "slow performance",
			Category: "software",
			Requires: []Field{FieldDeviceType, FieldOS},
			Subject:  FieldDeviceType,
			Variant:  FieldOS,
		},
		Patterns: []string{"slow", "lagging", "laggy", "freezing", "freezes", "hanging"},
	},
	{
		Problem: Problem{
			Tag:      "printer issue",
			Category: "hardware",
			Requires: []Field{FieldDeviceType, FieldBrand},
			Subject:  FieldDeviceType,
		},
		Patterns: []string{"printer", "paper jam", "won't print", "wont print", "can't print", "cant print"},
	},
	{
		Problem: Problem{
			Tag:      "virus",
			Category: "software",
			Requires: []Field{FieldOS},
			Subject:  FieldOS,
		},
		Patterns: []string{"virus", "malware", "pop-up", "popups", "hacked", "ransomware"},
	},
	{
		Problem: Problem{
			Tag:      "software install",
			Category: "software",
			Requires: []Field{FieldOS, FieldDetails},
			Subject:  FieldOS,
		},
		Patterns: []string{"install", "uninstall", "setup file", "can't download", "cant download"},
	},
	{
		Problem: Problem{
			Tag:      "password reset",
			Category: "account",
			Requires: []Field{FieldDetails},
		},
		Patterns: []string{"forgot password", "forgot my password", "reset password", "reset my password", "locked out", "can't log in", "cant log in", "can't login", "cant login"},
	},
}
