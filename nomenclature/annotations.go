package nomenclature

// Annotation codes. Each constant is named after the entry's Name so callers
// can write nomenclature.KeyConcept instead of the bare "KC".
const (
	Surprising           = "!"
	Question             = "?"
	Analogy              = "A"
	Agree                = "AG"
	Allegory             = "AL"
	Abolition            = "AO"
	Application          = "AP"
	ArgumentStructure    = "AR"
	Assumption           = "AS"
	ActionTask           = "AT"
	Allusion             = "AU"
	Breakthrough         = "B"
	BackgroundContext    = "BG"
	Behavior             = "BV"
	Claim                = "C"
	Counterargument      = "CA"
	Callback             = "CB"
	CauseEffect          = "CE"
	Confusing            = "CF"
	CharacterInsight     = "CH"
	Conclusion           = "CN"
	Connect              = "CO"
	CrossReference       = "CR"
	Critique             = "CT"
	ContextCrucial       = "CX"
	Definition           = "D"
	Dialogue             = "DI"
	Dark                 = "DK"
	Dialectic            = "DL"
	Doctrine             = "DO"
	DateTimeline         = "DT"
	Evidence             = "E"
	Erasure              = "ER"
	EthicalTeaching      = "ET"
	Example              = "EX"
	Foreshadowing        = "FH"
	FlawInReasoning      = "FL"
	Footnote             = "FN"
	FormulaEquation      = "FO"
	FramingArgument      = "FR"
	Humorous             = "H"
	HistoricalFact       = "HF"
	Hegemony             = "HG"
	Hyperbole            = "HY"
	Ironic               = "I"
	Insight              = "IN"
	Institution          = "IS"
	Intersectionality    = "IX"
	Beautiful            = "J"
	Juxtaposition        = "JX"
	Joy                  = "JY"
	KeyConcept           = "KC"
	LawLegal             = "LG"
	Language             = "LN"
	Metaphor             = "M"
	MassiveImplications  = "MI"
	ModelFramework       = "MO"
	Neologism            = "NL"
	CounterNarrative     = "NT"
	Oppression           = "OP"
	Pattern              = "PA"
	ProofDerivation      = "PF"
	Perspective          = "PP"
	Principle            = "PR"
	Paradox              = "PX"
	QuoteWorthy          = "Q"
	Research             = "R"
	Resistance           = "RA"
	Rage                 = "RG"
	RhetoricalDevice     = "RH"
	Risk                 = "RK"
	Recovery             = "RV"
	Setting              = "S"
	Sidebar              = "SB"
	SchoolOfThought      = "SC"
	SourceCodeExample    = "SO"
	Speculation          = "SP"
	SoundStyle           = "SS"
	Story                = "ST"
	SummarySynthesis     = "SU"
	Symbolic             = "SY"
	Thematic             = "T"
	TechnologyConcept    = "TC"
	TechnicalExplanation = "TE"
	ThoughtExperiment    = "TH"
	Terminology          = "TM"
	TurningPoint         = "TP"
	TestStudyMaterial    = "TS"
	TextVariant          = "TV"
	TranslationIssue     = "TX"
	VerseReference       = "V"
	VividImagery         = "VI"
	Violence             = "VL"
	Visual               = "VZ"
	LovedWording         = "W"
	WorldBuilding        = "WB"
	WordStudy            = "WS"
	WitnessingTestimony  = "WT"
	WorldviewRevealed    = "WV"
	Disagree             = "X"
)

// annotationCatalog is the single source of truth for annotation codes.
// Every index, table, and list is derived from it; order is the canonical
// listing order.
var annotationCatalog = []Entry{
	{Surprising, "Surprising", "Surprising or unexpected"},
	{Question, "Question", "Question validity or accuracy (doubt correctness, not comprehension - use CF if confused)"},
	{Analogy, "Analogy", "Noteworthy (i.e. good, bad, peculiar etc.) analogy"},
	{Agree, "Agree", "Agree with this"},
	{Allegory, "Allegory", "Allegory - entire story has symbolic deeper meaning"},
	{Abolition, "Abolition", "Abolition - abolitionist thinking, dismantling oppressive systems"},
	{Application, "Application", "Application - how to apply concept in practice (includes pastoral application)"},
	{ArgumentStructure, "ArgumentStructure", "Argument structure or logical progression - how argument is built (not the claim itself - use C for that)"},
	{Assumption, "Assumption", "Assumption - stated or unstated, foundational or questionable (includes premises, limitations, caveats)"},
	{ActionTask, "ActionTask", "Action/Task/To Do - something you want to remember to do or implement"},
	{Allusion, "Allusion", "Allusion - indirect reference to other works or events"},
	{Breakthrough, "Breakthrough", "Breakthrough - author's major insight or discovery (not yours - use IN for that)"},
	{BackgroundContext, "BackgroundContext", "Background context - historical, cultural, technical, geographical (includes community, diaspora themes)"},
	{Behavior, "Behavior", "Behavior - behavioral patterns, behavioral economics, habits, actions (psychology, economics, sociology)"},
	{Claim, "Claim", "Claim or argument being made"},
	{Counterargument, "Counterargument", "Counterargument - addresses opposing views (includes dissents, alternative positions)"},
	{Callback, "Callback", "Callback - references earlier moment in text"},
	{CauseEffect, "CauseEffect", "Cause and effect relationship"},
	{Confusing, "Confusing", "Confusing or unclear (comprehension issue, not doubt - use ? if questioning accuracy)"},
	{CharacterInsight, "CharacterInsight", "Character insight or development (works for biographical subjects, note 'first appearance' for introductions)"},
	{Conclusion, "Conclusion", "Conclusion - main takeaway or final conclusion"},
	{Connect, "Connect", "Connect to another book, current events, or personal experience"},
	{CrossReference, "CrossReference", "Cross-reference - author explicitly cites another passage, book, or verse (includes source quality notes)"},
	{Critique, "Critique", "Critique - author critiques another idea, philosopher, or theory"},
	{ContextCrucial, "ContextCrucial", "Context crucial - requires cultural or historical background to understand"},
	{Definition, "Definition", "Definition - term explicitly defined"},
	{Dialogue, "Dialogue", "Dialogue - particularly noteworthy (i.e. good, bad, peculiar etc.) character speech"},
	{Dark, "Dark", "Dark, distressing - depressing, sad, bleak, traumatic, grief (all heavy negative affect)"},
	{Dialectic, "Dialectic", "Dialectic - dialectical method, Socratic questioning, thesis-antithesis-synthesis"},
	{Doctrine, "Doctrine", "Doctrine - doctrinal position (includes ecclesiology, eschatology)"},
	{DateTimeline, "DateTimeline", "Date or timeline marker - important chronological information"},
	{Evidence, "Evidence", "Evidence or data - supports argument (includes statistics, qualitative evidence, all data types)"},
	{Erasure, "Erasure", "Erasure or silence - historical erasure, archival silence, what's missing"},
	{EthicalTeaching, "EthicalTeaching", "Ethical teaching - moral instruction (works in philosophy)"},
	{Example, "Example", "Example or illustration - clarifying example (pedagogical purpose)"},
	{Foreshadowing, "Foreshadowing", "Foreshadowing - hints at future events (works in narrative nonfiction)"},
	{FlawInReasoning, "FlawInReasoning", "Flaw in reasoning - logical fallacy, methodology error, code bug (includes contradictions, inconsistencies)"},
	{Footnote, "Footnote", "Footnote or note - important footnote, endnote, or marginal note"},
	{FormulaEquation, "FormulaEquation", "Formula or equation - important to know (financial, scientific, mathematical)"},
	{FramingArgument, "FramingArgument", "Framing argument - sets up later argument"},
	{Humorous, "Humorous", "Humorous or funny"},
	{HistoricalFact, "HistoricalFact", "Historical fact - factual event or date"},
	{Hegemony, "Hegemony", "Hegemony - dominant ideology or power structure (white supremacy, patriarchy, heteronormativity, etc.)"},
	{Hyperbole, "Hyperbole", "Hyperbole or exaggeration"},
	{Ironic, "Ironic", "Ironic"},
	{Insight, "Insight", "Insight - your personal realization (not author's discovery - use B for that)"},
	{Institution, "Institution", "Institution or structure - institutional racism, structures (includes coloniality, surveillance)"},
	{Intersectionality, "Intersectionality", "Intersectionality - race, gender, class, sexuality intersection (includes embodiment themes)"},
	{Beautiful, "Beautiful", "Beautiful or moving"},
	{Juxtaposition, "Juxtaposition", "Juxtaposition or contrast - comparing opposites (works for theoretical comparisons)"},
	{Joy, "Joy", "Joy or pleasure - joy, pleasure, life-making (works across contexts)"},
	{KeyConcept, "KeyConcept", "Key concept - central important concept (use for major policies, frameworks)"},
	{LawLegal, "LawLegal", "Law or legal - legal structures, legislation, case law, treaties (includes international agreements)"},
	{Language, "Language", "Language - any language word or grammar note (Greek, Hebrew, French, Spanish, Arabic, etc.)"},
	{Metaphor, "Metaphor", "Metaphor - noteworthy (i.e. good, bad, peculiar etc.) metaphor or direct comparison"},
	{MassiveImplications, "MassiveImplications", "Massive implications - far-reaching consequences or importance"},
	{ModelFramework, "ModelFramework", "Model or framework - theoretical model, diagram, organizational framework (business, scientific, conceptual)"},
	{Neologism, "Neologism", "Neologism - invented term, creative wordplay, or technical redefinition"},
	{CounterNarrative, "CounterNarrative", "Counter-narrative - challenges dominant narrative"},
	{Oppression, "Oppression", "Oppression - theorization of oppression (anti-Blackness, sexism, ableism, homophobia, etc.)"},
	{Pattern, "Pattern", "Pattern - recurring theme, design pattern, or motif"},
	{ProofDerivation, "ProofDerivation", "Proof or derivation - mathematical or logical proof step"},
	{Perspective, "Perspective", "Perspective or point of view - whose narrative or viewpoint (includes standpoint epistemology)"},
	{Principle, "Principle", "Principle - foundational rule or teaching (actionable, works across disciplines)"},
	{Paradox, "Paradox", "Paradox or mystery - contradictory statement revealing truth (logical paradox or theological mystery)"},
	{QuoteWorthy, "QuoteWorthy", "Quotable - a noteworthy (i.e. good, bad, peculiar etc.) phrase that you would use (with or without some variation) in your own writing, everyday life, or just want to remember this"},
	{Research, "Research", "Research, review, or link - return to this for any reason (note: external research, reread, or topic link)"},
	{Resistance, "Resistance", "Resistance or agency - acts of resistance, refusal, fugitivity, escape"},
	{Rage, "Rage", "Rage or anger - righteous anger, political anger (works in memoir, biography)"},
	{RhetoricalDevice, "RhetoricalDevice", "Rhetorical device - effective persuasion technique (catch-all for devices without specific codes)"},
	{Risk, "Risk", "Risk - risk analysis, risk/reward, risk management (finance, business, psychology, medicine)"},
	{Recovery, "Recovery", "Recovery - historical recovery or reclamation"},
	{Setting, "Setting", "Setting or environment building - physical or atmospheric (historical setting in nonfiction)"},
	{Sidebar, "Sidebar", "Sidebar or box - key information in sidebar, callout, or boxed text"},
	{SchoolOfThought, "SchoolOfThought", "School of thought - philosophical tradition, political ideology (Stoic, Marxist, etc.)"},
	{SourceCodeExample, "SourceCodeExample", "Source code example - particularly noteworthy (i.e. good, bad, peculiar etc.) implementation"},
	{Speculation, "Speculation", "Speculation or imagination - what-if, critical fabulation, radical imagination, alternative futures"},
	{SoundStyle, "SoundStyle", "Sound or style technique - alliteration, rhythm, sentence structure (includes epic conventions)"},
	{Story, "Story", "Story - retellable narrative (includes personal anecdotes, parables, case studies, illustrations)"},
	{SummarySynthesis, "SummarySynthesis", "Summary or synthesis - author compresses complex idea"},
	{Symbolic, "Symbolic", "Symbolic or figurative - non-literal interpretation (includes typology, allegory interpretation)"},
	{Thematic, "Thematic", "Thematic statement - central theme or thematic claim"},
	{TechnologyConcept, "TechnologyConcept", "Technology or concept - interesting tech or scientific idea (even if not central)"},
	{TechnicalExplanation, "TechnicalExplanation", "Technical explanation - algorithm, architecture, process, philosophical system (broadly technical)"},
	{ThoughtExperiment, "ThoughtExperiment", "Thought experiment - philosophical hypothetical or gedankenexperiment"},
	{Terminology, "Terminology", "Terminology - specific technical term used (not necessarily defined - use D for definitions)"},
	{TurningPoint, "TurningPoint", "Turning point or pivotal moment (works for arguments and narratives, note 'evolution' for gradual shifts)"},
	{TestStudyMaterial, "TestStudyMaterial", "Test or study material - likely exam material, must know"},
	{TextVariant, "TextVariant", "Text variant - different manuscript readings"},
	{TranslationIssue, "TranslationIssue", "Translation issue - English obscures original meaning"},
	{VerseReference, "VerseReference", "Verse reference - important scripture citation"},
	{VividImagery, "VividImagery", "Vivid imagery - striking visual description (any subject, not just settings)"},
	{Violence, "Violence", "Violence - structural violence or state violence (works in political science, history)"},
	{Visual, "Visual", "Visual - important diagram, chart, graph, table, or image"},
	{LovedWording, "LovedWording", "Loved the wording - excellent word choice or phrasing"},
	{WorldBuilding, "WorldBuilding", "WorldBuilding - creating unique fictional universe rules"},
	{WordStudy, "WordStudy", "Word study - etymology, semantic range, nuance"},
	{WitnessingTestimony, "WitnessingTestimony", "Witnessing or testimony - first-person accounts with evidentiary weight"},
	{WorldviewRevealed, "WorldviewRevealed", "Worldview revealed - author's fundamental beliefs showing through"},
	{Disagree, "Disagree", "Disagree with this"},
}
