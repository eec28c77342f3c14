package tagschema

// presetTags maps each preset to its allowed tag names. Names are lower-case;
// doc-comment tag keywords are compared after lower-casing.
var presetTags = map[string]map[string]bool{
	PresetClosureCompiler: set(
		"author", "const", "constant", "constructor", "define", "deprecated",
		"dict", "enum", "export", "expose", "extends", "externs", "fileoverview",
		"final", "implements", "implicitcast", "inheritdoc", "interface",
		"lends", "license", "meaning", "modifies", "nocollapse", "nocompile",
		"noalias", "nosideeffects", "override", "owner", "package", "param",
		"polymerbehavior", "preserve", "private", "protected", "public",
		"record", "return", "see", "struct", "suppress", "template", "this",
		"throws", "type", "typedef", "unrestricted", "version", "desc",
	),
	PresetJSDoc3: set(
		"abstract", "access", "alias", "arg", "argument", "async", "augments",
		"author", "borrows", "callback", "class", "classdesc", "const",
		"constant", "constructor", "constructs", "copyright", "default",
		"defaultvalue", "deprecated", "desc", "description", "emits", "enum",
		"event", "example", "exception", "exports", "extends", "external",
		"file", "fileoverview", "fires", "func", "function", "generator",
		"global", "hideconstructor", "host", "ignore", "implements",
		"inheritdoc", "inner", "instance", "interface", "kind", "lends",
		"license", "listens", "member", "memberof", "method", "mixes", "mixin",
		"module", "name", "namespace", "override", "overview", "package",
		"param", "private", "prop", "property", "protected", "public",
		"readonly", "requires", "return", "returns", "see", "since", "static",
		"summary", "this", "throws", "todo", "tutorial", "type", "typedef",
		"var", "variation", "version", "virtual", "yield", "yields",
	),
	PresetJSDuck5: set(
		"abstract", "accessor", "alias", "alternateclassname", "aside",
		"author", "cfg", "chainable", "class", "constructor", "deprecated",
		"docauthor", "enum", "event", "evented", "experimental", "extends",
		"fires", "ftype", "hide", "ignore", "inheritable", "inheritdoc",
		"localdoc", "markdown", "member", "method", "mixins", "new",
		"override", "param", "preventable", "private", "property",
		"protected", "ptype", "readonly", "removed", "requires", "return",
		"since", "singleton", "static", "template", "throws", "type", "uses",
		"xtype",
	),
}

// requirements lists the built-in value requirement for tags whose value
// shape is fixed. Tags without an entry accept anything.
var requirements = map[string]Requirement{
	// Flags.
	"abstract":        NoValue,
	"async":           NoValue,
	"chainable":       NoValue,
	"dict":            NoValue,
	"evented":         NoValue,
	"experimental":    NoValue,
	"externs":         NoValue,
	"final":           NoValue,
	"generator":       NoValue,
	"global":          NoValue,
	"hideconstructor": NoValue,
	"ignore":          NoValue,
	"inheritable":     NoValue,
	"inheritdoc":      NoValue,
	"inner":           NoValue,
	"instance":        NoValue,
	"nocollapse":      NoValue,
	"nocompile":       NoValue,
	"noalias":         NoValue,
	"nosideeffects":   NoValue,
	"override":        NoValue,
	"preserve":        NoValue,
	"preventable":     NoValue,
	"readonly":        NoValue,
	"record":          NoValue,
	"singleton":       NoValue,
	"static":          NoValue,
	"struct":          NoValue,
	"unrestricted":    NoValue,
	"virtual":         NoValue,

	// Tags that only make sense with a value.
	"access":             RequiredValue,
	"alias":              RequiredValue,
	"alternateclassname": RequiredValue,
	"arg":                RequiredValue,
	"argument":           RequiredValue,
	"augments":           RequiredValue,
	"author":             RequiredValue,
	"borrows":            RequiredValue,
	"callback":           RequiredValue,
	"cfg":                RequiredValue,
	"classdesc":          RequiredValue,
	"copyright":          RequiredValue,
	"define":             RequiredValue,
	"description":        RequiredValue,
	"desc":               RequiredValue,
	"docauthor":          RequiredValue,
	"emits":              RequiredValue,
	"event":              RequiredValue,
	"example":            RequiredValue,
	"extends":            RequiredValue,
	"external":           RequiredValue,
	"fires":              RequiredValue,
	"ftype":              RequiredValue,
	"implements":         RequiredValue,
	"kind":               RequiredValue,
	"lends":              RequiredValue,
	"license":            RequiredValue,
	"listens":            RequiredValue,
	"meaning":            RequiredValue,
	"memberof":           RequiredValue,
	"mixes":              RequiredValue,
	"mixins":             RequiredValue,
	"modifies":           RequiredValue,
	"name":               RequiredValue,
	"param":              RequiredValue,
	"prop":               RequiredValue,
	"property":           RequiredValue,
	"ptype":              RequiredValue,
	"removed":            RequiredValue,
	"requires":           RequiredValue,
	"see":                RequiredValue,
	"since":              RequiredValue,
	"summary":            RequiredValue,
	"suppress":           RequiredValue,
	"template":           RequiredValue,
	"this":               RequiredValue,
	"todo":               RequiredValue,
	"tutorial":           RequiredValue,
	"type":               RequiredValue,
	"typedef":            RequiredValue,
	"uses":               RequiredValue,
	"variation":          RequiredValue,
	"version":            RequiredValue,
	"xtype":              RequiredValue,
}

// typedTags are the tags whose value may start with a {type} block.
var typedTags = set(
	"arg", "argument", "augments", "cfg", "const", "constant", "define",
	"enum", "exception", "export", "extends", "implements", "lends", "member",
	"package", "param", "private", "prop", "property", "protected", "public",
	"return", "returns", "this", "throws", "type", "typedef", "var", "yield",
	"yields",
)

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, name := range names {
		m[name] = true
	}

	return m
}
