package entity

type TaskKind string

type TaskCategory string

const (
	CategoryStarter TaskCategory = "starter"
	CategoryHard    TaskCategory = "hard"
)

const (
	TaskWakeEarly  TaskKind = "wake_early"
	TaskHydration  TaskKind = "hydration"
	TaskWorkout    TaskKind = "workout"
	TaskReading    TaskKind = "reading"
	TaskColdShower TaskKind = "cold_shower"
	TaskCleanDiet  TaskKind = "clean_diet"
	TaskNoSocial   TaskKind = "no_social_media"
	TaskReflection TaskKind = "reflection"
)

type TaskDefinition struct {
	ID            TaskKind     `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Purpose       string       `json:"purpose"`
	Category      TaskCategory `json:"category"`
	HasTextInput  bool         `json:"has_text_input"`
	HasFileUpload bool         `json:"has_file_upload"`
	MultipleFiles bool         `json:"multiple_files"`
}

// Tasks is the fixed daily rule set: rules 1-4 are starter mode, 5-8 hard mode.
var Tasks = []TaskDefinition{
	{
		ID:            TaskWakeEarly,
		Title:         "Wake up before 6 AM",
		Description:   "Get out of bed before 6:00 and upload a photo of the clock.",
		Purpose:       "Win the first decision of the day.",
		Category:      CategoryStarter,
		HasFileUpload: true,
	},
	{
		ID:            TaskHydration,
		Title:         "Drink 3 litres of water",
		Description:   "Upload photos of every bottle full and then empty.",
		Purpose:       "Keep the body running on water, not sugar.",
		Category:      CategoryStarter,
		HasFileUpload: true,
		MultipleFiles: true,
	},
	{
		ID:            TaskWorkout,
		Title:         "45 minute workout",
		Description:   "Any training session of at least 45 minutes.",
		Purpose:       "Build a body that keeps up with the mind.",
		Category:      CategoryStarter,
		HasFileUpload: true,
	},
	{
		ID:           TaskReading,
		Title:        "Read 10 pages",
		Description:  "Non-fiction only. Write down the key takeaway.",
		Purpose:      "Compound knowledge a little every day.",
		Category:     CategoryStarter,
		HasTextInput: true,
	},
	{
		ID:            TaskColdShower,
		Title:         "Cold shower",
		Description:   "At least 3 minutes under cold water.",
		Purpose:       "Practice doing the uncomfortable thing on purpose.",
		Category:      CategoryHard,
		HasFileUpload: true,
	},
	{
		ID:            TaskCleanDiet,
		Title:         "No junk food",
		Description:   "No sugar, fast food or alcohol. Upload photos of your meals.",
		Purpose:       "Fuel discipline with what you eat.",
		Category:      CategoryHard,
		HasFileUpload: true,
		MultipleFiles: true,
	},
	{
		ID:           TaskNoSocial,
		Title:        "No social media",
		Description:  "Zero minutes of scrolling. Report your screen time.",
		Purpose:      "Take your attention back.",
		Category:     CategoryHard,
		HasTextInput: true,
	},
	{
		ID:           TaskReflection,
		Title:        "Evening reflection",
		Description:  "Write what went well, what did not, and tomorrow's plan.",
		Purpose:      "Close the loop on every day.",
		Category:     CategoryHard,
		HasTextInput: true,
	},
}

// TasksPerDay is the number of task kinds expected every day.
var TasksPerDay = len(Tasks)

func LookupTask(id TaskKind) (TaskDefinition, bool) {
	for _, t := range Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return TaskDefinition{}, false
}
