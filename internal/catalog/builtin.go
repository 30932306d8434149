package catalog

import "waltgoat/walker-app/internal/domain"

// builtin is the seed dataset, in catalog order.
var builtin = []domain.ExerciseDefinition{
	// Gambe
	{
		ID:           "ex_squat_sedia",
		Name:         "Squat con Sedia",
		Category:     domain.CategoryLegs,
		MuscleGroups: []string{"quadricipiti", "glutei"},
		Equipment:    []string{"sedia"},
		Technique:    "In piedi davanti a una sedia, scendi lentamente come per sederti, sfiora la sedia e risali. Mantieni la schiena dritta e le ginocchia allineate ai piedi.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Usa le braccia per aiutarti ad alzarti",
			Medium: "Aggiungi una pausa di 2 secondi in basso",
			Hard:   "Tieni un peso al petto",
		},
		SafetyNote: "Non lasciare che le ginocchia superino le punte dei piedi",
	},
	{
		ID:           "ex_affondi_supporto",
		Name:         "Affondi con Supporto",
		Category:     domain.CategoryLegs,
		MuscleGroups: []string{"quadricipiti", "glutei", "femorali"},
		Equipment:    []string{"sedia", "muro"},
		Technique:    "Tenendoti a una sedia o al muro, fai un passo avanti e scendi piegando entrambe le ginocchia a 90°. Torna in posizione e alterna le gambe.",
		DefaultSets:  3,
		DefaultReps:  10,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Affondi più corti con supporto stabile",
			Medium: "Riduci l'uso del supporto",
			Hard:   "Senza supporto con manubri",
		},
		SafetyNote: "Mantieni il busto eretto durante tutto il movimento",
	},
	{
		ID:           "ex_calf_raises",
		Name:         "Sollevamenti Polpacci",
		Category:     domain.CategoryLegs,
		MuscleGroups: []string{"polpacci"},
		Equipment:    []string{"sedia", "gradino"},
		Technique:    "In piedi con supporto, solleva i talloni il più possibile contraendo i polpacci. Mantieni 1 secondo in alto, poi scendi lentamente.",
		DefaultSets:  3,
		DefaultReps:  15,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Entrambi i piedi insieme",
			Medium: "Su un gradino per maggiore range",
			Hard:   "Un piede alla volta",
		},
		SafetyNote: "Usa sempre un supporto per l'equilibrio",
	},
	{
		ID:           "ex_leg_extension_elastico",
		Name:         "Leg Extension con Elastico",
		Category:     domain.CategoryLegs,
		MuscleGroups: []string{"quadricipiti"},
		Equipment:    []string{"elastico", "sedia"},
		Technique:    "Seduto su una sedia con l'elastico legato alla caviglia e fissato alla gamba della sedia, estendi la gamba completamente. Mantieni 2 secondi e torna controllato.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Elastico giallo (leggero)",
			Medium: "Elastico rosso (medio)",
			Hard:   "Elastico blu (forte)",
		},
		SafetyNote: "Non iperestendere il ginocchio",
		BandColor:  domain.BandYellow,
	},
	{
		ID:           "ex_step_up",
		Name:         "Step Up",
		Category:     domain.CategoryLegs,
		MuscleGroups: []string{"quadricipiti", "glutei"},
		Equipment:    []string{"gradino", "step"},
		Technique:    "Sali su un gradino o step con un piede, porta l'altro piede in alto, poi scendi controllato. Alterna le gambe.",
		DefaultSets:  3,
		DefaultReps:  10,
		Level:        domain.LevelIntermediate,
		Variants: domain.Variants{
			Easy:   "Gradino basso con supporto",
			Medium: "Gradino medio",
			Hard:   "Gradino alto con manubri",
		},
		SafetyNote: "Assicurati che il gradino sia stabile",
	},
	// Core
	{
		ID:           "ex_crunch_sedia",
		Name:         "Crunch con Supporto Sedia",
		Category:     domain.CategoryCore,
		MuscleGroups: []string{"addominali"},
		Equipment:    []string{"sedia", "tappetino"},
		Technique:    "Sdraiato con i polpacci appoggiati sulla sedia, solleva le spalle verso le ginocchia contraendo gli addominali. Non tirare il collo.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Movimento piccolo, mani lungo i fianchi",
			Medium: "Mani dietro la testa (senza tirare)",
			Hard:   "Pausa di 2 sec in alto",
		},
		SafetyNote: "Non tirare il collo con le mani",
	},
	{
		ID:              "ex_plank_ginocchia",
		Name:            "Plank sulle Ginocchia",
		Category:        domain.CategoryCore,
		MuscleGroups:    []string{"addominali", "stabilizzatori"},
		Equipment:       []string{"tappetino"},
		Technique:       "In posizione prona, solleva il corpo sugli avambracci e sulle ginocchia. Mantieni la schiena dritta e gli addominali contratti.",
		DefaultSets:     3,
		DefaultReps:     1,
		DurationSeconds: 20,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "15 secondi",
			Medium: "30 secondi",
			Hard:   "45 secondi o plank completo",
		},
		SafetyNote: "Non lasciare che i fianchi si abbassino",
	},
	{
		ID:           "ex_rotazioni_busto",
		Name:         "Rotazioni del Busto",
		Category:     domain.CategoryCore,
		MuscleGroups: []string{"obliqui", "core"},
		Equipment:    []string{"bastone", "nessuno"},
		Technique:    "Seduto o in piedi, tieni un bastone sulle spalle o le braccia incrociate al petto. Ruota lentamente il busto a sinistra, poi a destra.",
		DefaultSets:  3,
		DefaultReps:  15,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Movimento lento senza peso",
			Medium: "Con bastone",
			Hard:   "Con peso leggero",
		},
		SafetyNote: "Ruota solo il busto, mantieni i fianchi fermi",
	},
	{
		ID:           "ex_ponte_glutei",
		Name:         "Ponte per Glutei",
		Category:     domain.CategoryCore,
		MuscleGroups: []string{"glutei", "lombari"},
		Equipment:    []string{"tappetino"},
		Technique:    "Sdraiato sulla schiena, ginocchia piegate e piedi a terra. Solleva i fianchi contraendo i glutei fino a formare una linea retta dalle spalle alle ginocchia.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Ponte base",
			Medium: "Pausa 3 sec in alto",
			Hard:   "Un piede sollevato",
		},
		SafetyNote: "Non inarcare eccessivamente la schiena",
	},
	{
		ID:           "ex_dead_bug",
		Name:         "Dead Bug",
		Category:     domain.CategoryCore,
		MuscleGroups: []string{"addominali", "stabilizzatori"},
		Equipment:    []string{"tappetino"},
		Technique:    "Sdraiato, braccia verso il soffitto, ginocchia piegate a 90°. Abbassa lentamente un braccio e la gamba opposta verso il pavimento, poi torna e alterna.",
		DefaultSets:  3,
		DefaultReps:  10,
		Level:        domain.LevelIntermediate,
		Variants: domain.Variants{
			Easy:   "Solo gambe",
			Medium: "Braccio e gamba opposti",
			Hard:   "Movimento più lento",
		},
		SafetyNote: "Mantieni la schiena premuta contro il pavimento",
	},
	// Braccia
	{
		ID:              "ex_bicipiti_manubri",
		Name:            "Curl Bicipiti con Manubri",
		Category:        domain.CategoryArms,
		MuscleGroups:    []string{"bicipiti"},
		Equipment:       []string{"manubri"},
		Technique:       "In piedi o seduto, braccia lungo i fianchi con manubri. Piega i gomiti portando i pesi verso le spalle, contrai i bicipiti, poi scendi lentamente.",
		DefaultSets:     3,
		DefaultReps:     12,
		DefaultWeightKg: 2.0,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "1-2 kg",
			Medium: "3-4 kg",
			Hard:   "5+ kg",
		},
		SafetyNote: "Non oscillare il corpo per aiutarti",
	},
	{
		ID:           "ex_bicipiti_elastico",
		Name:         "Curl Bicipiti con Elastico",
		Category:     domain.CategoryArms,
		MuscleGroups: []string{"bicipiti"},
		Equipment:    []string{"elastico"},
		Technique:    "In piedi sull'elastico, impugna le estremità e piega i gomiti portando le mani verso le spalle. Mantieni i gomiti fermi.",
		DefaultSets:  3,
		DefaultReps:  15,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Elastico giallo",
			Medium: "Elastico rosso",
			Hard:   "Elastico blu",
		},
		SafetyNote: "Assicurati che l'elastico sia ben fissato sotto i piedi",
		BandColor:  domain.BandRed,
	},
	{
		ID:           "ex_tricipiti_sedia",
		Name:         "Dips su Sedia",
		Category:     domain.CategoryArms,
		MuscleGroups: []string{"tricipiti"},
		Equipment:    []string{"sedia"},
		Technique:    "Seduto sul bordo di una sedia stabile, mani ai lati. Solleva il corpo dalla sedia e scendi piegando i gomiti a 90°, poi spingi per risalire.",
		DefaultSets:  3,
		DefaultReps:  10,
		Level:        domain.LevelIntermediate,
		Variants: domain.Variants{
			Easy:   "Piedi vicini, movimento piccolo",
			Medium: "Piedi lontani, movimento completo",
			Hard:   "Una gamba sollevata",
		},
		SafetyNote: "Usa una sedia molto stabile che non scivoli",
	},
	{
		ID:              "ex_tricipiti_estensioni",
		Name:            "Estensioni Tricipiti",
		Category:        domain.CategoryArms,
		MuscleGroups:    []string{"tricipiti"},
		Equipment:       []string{"manubrio"},
		Technique:       "Seduto o in piedi, tieni un manubrio con entrambe le mani sopra la testa. Piega i gomiti portando il peso dietro la testa, poi estendi le braccia.",
		DefaultSets:     3,
		DefaultReps:     12,
		DefaultWeightKg: 2.0,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "1-2 kg",
			Medium: "3-4 kg",
			Hard:   "5+ kg",
		},
		SafetyNote: "Mantieni i gomiti vicini alla testa",
	},
	// Spalle
	{
		ID:              "ex_alzate_laterali",
		Name:            "Alzate Laterali",
		Category:        domain.CategoryShoulders,
		MuscleGroups:    []string{"deltoidi laterali"},
		Equipment:       []string{"manubri"},
		Technique:       "In piedi, braccia lungo i fianchi con manubri leggeri. Solleva le braccia lateralmente fino all'altezza delle spalle, poi abbassa lentamente.",
		DefaultSets:     3,
		DefaultReps:     12,
		DefaultWeightKg: 1.5,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "0.5-1 kg",
			Medium: "1.5-2 kg",
			Hard:   "2.5-3 kg",
		},
		SafetyNote: "Non alzare oltre l'altezza delle spalle",
	},
	{
		ID:              "ex_alzate_frontali",
		Name:            "Alzate Frontali",
		Category:        domain.CategoryShoulders,
		MuscleGroups:    []string{"deltoidi anteriori"},
		Equipment:       []string{"manubri"},
		Technique:       "In piedi, braccia davanti alle cosce con manubri. Solleva un braccio alla volta frontalmente fino all'altezza delle spalle.",
		DefaultSets:     3,
		DefaultReps:     10,
		DefaultWeightKg: 1.5,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "0.5-1 kg, alternato",
			Medium: "1.5-2 kg",
			Hard:   "2.5 kg, entrambe le braccia insieme",
		},
		SafetyNote: "Non usare slancio",
	},
	{
		ID:              "ex_shoulder_press",
		Name:            "Shoulder Press Seduto",
		Category:        domain.CategoryShoulders,
		MuscleGroups:    []string{"deltoidi", "tricipiti"},
		Equipment:       []string{"manubri", "sedia"},
		Technique:       "Seduto con schiena supportata, manubri all'altezza delle spalle. Spingi i pesi verso l'alto fino a estendere le braccia, poi scendi lentamente.",
		DefaultSets:     3,
		DefaultReps:     10,
		DefaultWeightKg: 2.0,
		Level:           domain.LevelIntermediate,
		Variants: domain.Variants{
			Easy:   "1-2 kg",
			Medium: "2-3 kg",
			Hard:   "4+ kg",
		},
		SafetyNote: "Mantieni la schiena ben appoggiata",
	},
	// Petto
	{
		ID:           "ex_push_up_muro",
		Name:         "Push Up al Muro",
		Category:     domain.CategoryChest,
		MuscleGroups: []string{"pettorali", "tricipiti", "spalle"},
		Equipment:    []string{"muro"},
		Technique:    "In piedi di fronte al muro a circa un braccio di distanza. Mani sul muro, larghezza spalle. Piega i gomiti portando il petto verso il muro, poi spingi per tornare.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Vicino al muro",
			Medium: "Un passo dal muro",
			Hard:   "Due passi dal muro",
		},
		SafetyNote: "Mantieni il corpo dritto come una tavola",
	},
	{
		ID:           "ex_chest_press_elastico",
		Name:         "Chest Press con Elastico",
		Category:     domain.CategoryChest,
		MuscleGroups: []string{"pettorali", "tricipiti"},
		Equipment:    []string{"elastico"},
		Technique:    "L'elastico passa dietro la schiena, impugna le estremità. Spingi in avanti come se facessi un pugno, poi torna lentamente.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Elastico giallo",
			Medium: "Elastico rosso",
			Hard:   "Elastico blu",
		},
		SafetyNote: "Controlla il movimento di ritorno",
		BandColor:  domain.BandRed,
	},
	{
		ID:              "ex_fly_manubri",
		Name:            "Fly con Manubri",
		Category:        domain.CategoryChest,
		MuscleGroups:    []string{"pettorali"},
		Equipment:       []string{"manubri", "panca", "tappetino"},
		Technique:       "Sdraiato sulla schiena, braccia estese verso l'alto con manubri. Apri le braccia lateralmente mantenendo i gomiti leggermente piegati, poi richiudi.",
		DefaultSets:     3,
		DefaultReps:     10,
		DefaultWeightKg: 2.0,
		Level:           domain.LevelIntermediate,
		Variants: domain.Variants{
			Easy:   "1-2 kg, movimento ridotto",
			Medium: "2-3 kg",
			Hard:   "4+ kg",
		},
		SafetyNote: "Non scendere troppo per proteggere le spalle",
	},
	// Schiena
	{
		ID:              "ex_rematore_manubri",
		Name:            "Rematore con Manubri",
		Category:        domain.CategoryBack,
		MuscleGroups:    []string{"dorsali", "romboidi", "bicipiti"},
		Equipment:       []string{"manubri", "sedia"},
		Technique:       "Piegato in avanti con una mano su una sedia per supporto. L'altra mano tiene il manubrio. Tira il peso verso il fianco, poi abbassa lentamente.",
		DefaultSets:     3,
		DefaultReps:     10,
		DefaultWeightKg: 3.0,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "2 kg",
			Medium: "3-4 kg",
			Hard:   "5+ kg",
		},
		SafetyNote: "Mantieni la schiena dritta, non ruotare il busto",
	},
	{
		ID:           "ex_pull_elastico",
		Name:         "Tirate con Elastico",
		Category:     domain.CategoryBack,
		MuscleGroups: []string{"dorsali", "romboidi"},
		Equipment:    []string{"elastico", "porta"},
		Technique:    "Elastico fissato a una porta all'altezza del petto. Impugna le estremità e tira verso di te, stringendo le scapole. Torna lentamente.",
		DefaultSets:  3,
		DefaultReps:  12,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Elastico giallo",
			Medium: "Elastico rosso",
			Hard:   "Elastico blu o doppio",
		},
		SafetyNote: "Assicurati che l'elastico sia ben fissato",
		BandColor:  domain.BandRed,
	},
	{
		ID:           "ex_superman",
		Name:         "Superman",
		Category:     domain.CategoryBack,
		MuscleGroups: []string{"lombari", "glutei"},
		Equipment:    []string{"tappetino"},
		Technique:    "Sdraiato a pancia in giù, braccia distese in avanti. Solleva contemporaneamente braccia e gambe mantenendo la posizione 2-3 secondi.",
		DefaultSets:  3,
		DefaultReps:  10,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Solo braccia o solo gambe",
			Medium: "Braccia e gambe insieme",
			Hard:   "Tenuta più lunga",
		},
		SafetyNote: "Non inarcare eccessivamente la schiena",
	},
	{
		ID:           "ex_scapole_strette",
		Name:         "Strette Scapolari",
		Category:     domain.CategoryBack,
		MuscleGroups: []string{"romboidi", "trapezio"},
		Equipment:    []string{"nessuno"},
		Technique:    "In piedi o seduto, stringi le scapole insieme come se volessi tenere una matita tra di esse. Mantieni 3-5 secondi, rilascia e ripeti.",
		DefaultSets:  3,
		DefaultReps:  15,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Tenuta 2 sec",
			Medium: "Tenuta 5 sec",
			Hard:   "Con elastico leggero",
		},
		SafetyNote: "Non sollevare le spalle verso le orecchie",
	},
	// Cardio
	{
		ID:              "ex_marcia_posto",
		Name:            "Marcia sul Posto",
		Category:        domain.CategoryCardio,
		MuscleGroups:    []string{"cardio", "gambe"},
		Equipment:       []string{"nessuno"},
		Technique:       "Solleva le ginocchia alternandole come se camminassi sul posto. Aumenta gradualmente la velocità. Usa le braccia in modo coordinato.",
		DefaultSets:     1,
		DefaultReps:     1,
		DurationSeconds: 60,
		Level:           domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Lento, 30 secondi",
			Medium: "Moderato, 60 secondi",
			Hard:   "Veloce, 90 secondi",
		},
		SafetyNote: "Indossa scarpe comode",
	},
	{
		ID:           "ex_jumping_jacks_soft",
		Name:         "Jumping Jacks Soft",
		Category:     domain.CategoryCardio,
		MuscleGroups: []string{"cardio", "spalle"},
		Equipment:    []string{"nessuno"},
		Technique:    "Versione soft: invece di saltare, allarga un piede alla volta mentre alzi le braccia lateralmente. Movimenti fluidi e controllati.",
		DefaultSets:  3,
		DefaultReps:  15,
		Level:        domain.LevelBeginner,
		Variants: domain.Variants{
			Easy:   "Movimento lento, un piede alla volta",
			Medium: "Movimento più fluido",
			Hard:   "Con piccolo salto",
		},
		SafetyNote: "Evita movimenti bruschi",
	},
}
