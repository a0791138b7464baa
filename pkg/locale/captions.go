package locale

var english = Text{
	Lang: "en",
	CLI: Captions{
		"total_files":    "Total files",
		"total_size":     "Total size",
		"dup_files":      "Redundancy files",
		"dup_size":       "Redundancy size",
		"dup_percent":    "Redundancy percentage",
		"time_passed":    "Time passed",
		"done":           "DONE",
		"report_created": "Report created:",
	},
	Report: Captions{
		"ws_detailed": "Detailed",
		"ws_summary":  "Summary",
		"cap1_A1":     "Original file",
		"cap1_B1":     "Duplicate file",
		"cap1_C1":     "Size",
		"cap1_D1":     "Unique file hash",
		"cap1_E1":     "File type",
		"cap2_A1":     "Total files",
		"cap2_A2":     "Total used",
		"cap2_A3":     "Duplicates",
		"cap2_A4":     "Occupied by duplicates",
		"cap2_A5":     "Percentage of duplicates",
		"cap3_D1":     "Top ten biggest duplicates",
		"cap3_E1":     "Size",
		"cap4_G1":     "Duplicate files by type",
		"cap4_H1":     "Quantity",
	},
}

var russian = Text{
	Lang: "ru",
	CLI: Captions{
		"total_files":    "Всего файлов",
		"total_size":     "Общий размер",
		"dup_files":      "Файлов-дубликатов",
		"dup_size":       "Размер дубликатов",
		"dup_percent":    "Процент дубликатов",
		"time_passed":    "Прошло времени",
		"done":           "ГОТОВО",
		"report_created": "Создан отчёт:",
	},
	Report: Captions{
		"ws_detailed": "Подробно",
		"ws_summary":  "Итоги",
		"cap1_A1":     "Оригинальный файл",
		"cap1_B1":     "Файл-дубликат",
		"cap1_C1":     "Размер",
		"cap1_D1":     "Уникальный хеш файла",
		"cap1_E1":     "Тип файла",
		"cap2_A1":     "Всего файлов",
		"cap2_A2":     "Всего занято",
		"cap2_A3":     "Дубликатов",
		"cap2_A4":     "Занято дубликатами",
		"cap2_A5":     "Процент дубликатов",
		"cap3_D1":     "Десять самых больших дубликатов",
		"cap3_E1":     "Размер",
		"cap4_G1":     "Дубликаты по типам",
		"cap4_H1":     "Количество",
	},
}
