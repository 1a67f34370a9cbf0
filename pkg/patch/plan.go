package patch

import (
	"fmt"

	"github.com/arthur-debert/langgen/pkg/templates"
)

// Host files touched by centralized registration.
const (
	LangConfigPath    = "src/lang_config.h"
	LangDispatchPath  = "src/lang_dispatch.c"
	RootCMakePath     = "CMakeLists.txt"
	LokiLibraryPath   = "scripts/cmake/psnd_loki_library.cmake"
	PsndBinaryPath    = "scripts/cmake/psnd_psnd_binary.cmake"
	TestsRegistryPath = "scripts/cmake/psnd_tests.cmake"
)

// CentralizedPlan returns the fixed per-file record lists that register
// a language in the shared host files. The anchors are the entries for
// the built-in bog language, which every host tree carries; each new
// language is appended directly after it.
//
// Anchors, insertions, and guards are all derived from the name set
// alone, so the plan is pure data and two runs compute identical plans.
func CentralizedPlan(v templates.Vars) []FilePlan {
	return []FilePlan{
		{
			Path: LangConfigPath,
			Records: []Record{
				{
					Anchor: "#define IF_LANG_BOG(x)\n#endif",
					Insertion: fmt.Sprintf("\n\n#ifdef LANG_%[1]s\n#define IF_LANG_%[1]s(x) x\n#else\n#define IF_LANG_%[1]s(x)\n#endif",
						v.Upper),
					Guard: fmt.Sprintf("#define IF_LANG_%s(x)", v.Upper),
				},
				{
					Anchor:    "IF_LANG_BOG(struct LokiBogState;)",
					Insertion: fmt.Sprintf("\nIF_LANG_%s(struct Loki%sState;)", v.Upper, v.Title),
					Guard:     fmt.Sprintf("struct Loki%sState;", v.Title),
				},
				{
					Anchor:    "IF_LANG_BOG(struct LokiBogState *bog_state;)",
					Insertion: fmt.Sprintf(" \\\n    IF_LANG_%s(struct Loki%sState *%s_state;)", v.Upper, v.Title, v.Lower),
					Guard:     fmt.Sprintf("*%s_state;", v.Lower),
				},
				{
					Anchor:    "IF_LANG_BOG(void bog_loki_lang_init(void);)",
					Insertion: fmt.Sprintf("\nIF_LANG_%s(void %s_loki_lang_init(void);)", v.Upper, v.Lower),
					Guard:     fmt.Sprintf("void %s_loki_lang_init(void);", v.Lower),
				},
				{
					Anchor:    "IF_LANG_BOG(bog_loki_lang_init();)",
					Insertion: fmt.Sprintf(" \\\n    IF_LANG_%s(%s_loki_lang_init();)", v.Upper, v.Lower),
					Guard:     fmt.Sprintf("%s_loki_lang_init();", v.Lower),
				},
			},
		},
		{
			Path: LangDispatchPath,
			Records: []Record{
				{
					Anchor: "#include \"lang_dispatch.h\"",
					Insertion: fmt.Sprintf("\n\n#ifdef LANG_%[1]s\n#include \"lang/%[2]s/repl.h\"\n#endif",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("lang/%s/repl.h", v.Lower),
				},
				{
					Anchor: "int lang_dispatch(const char *lang, int argc, char **argv) {",
					Insertion: fmt.Sprintf("\n#ifdef LANG_%[1]s\n    if (strcmp(lang, \"%[2]s\") == 0) {\n        return %[2]s_repl_main(argc, argv);\n    }\n#endif\n",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("strcmp(lang, %q)", v.Lower),
				},
			},
		},
		{
			Path: RootCMakePath,
			Records: []Record{
				{
					Anchor:    `option(LANG_BOG "Include the Bog language" ON)`,
					Insertion: fmt.Sprintf("\noption(LANG_%s \"Include the %s language\" ON)", v.Upper, v.Title),
					Guard:     fmt.Sprintf("option(LANG_%s \"", v.Upper),
				},
				{
					Anchor: "if(LANG_BOG)\n    include(psnd_bog_library)\nendif()",
					Insertion: fmt.Sprintf("\n\nif(LANG_%[1]s)\n    include(psnd_%[2]s_library)\nendif()",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("include(psnd_%s_library)", v.Lower),
				},
			},
		},
		{
			Path: LokiLibraryPath,
			Records: []Record{
				{
					Anchor: "if(LANG_BOG)\n    list(APPEND LOKI_LANG_SOURCES ${PSND_ROOT_DIR}/src/lang/bog/register.c)\nendif()",
					Insertion: fmt.Sprintf("\n\nif(LANG_%[1]s)\n    list(APPEND LOKI_LANG_SOURCES ${PSND_ROOT_DIR}/src/lang/%[2]s/register.c)\nendif()",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("src/lang/%s/register.c", v.Lower),
				},
				{
					Anchor: "if(LANG_BOG)\n    list(APPEND LOKI_PUBLIC_LIBS bog)\n    target_compile_definitions(libloki PUBLIC LANG_BOG=1)\nendif()",
					Insertion: fmt.Sprintf("\n\nif(LANG_%[1]s)\n    list(APPEND LOKI_PUBLIC_LIBS %[2]s)\n    target_compile_definitions(libloki PUBLIC LANG_%[1]s=1)\nendif()",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("LANG_%s=1", v.Upper),
				},
			},
		},
		{
			Path: PsndBinaryPath,
			Records: []Record{
				{
					Anchor: "if(LANG_BOG)\n    list(APPEND PSND_LANG_SOURCES\n        ${PSND_ROOT_DIR}/src/lang/bog/repl.c\n        ${PSND_ROOT_DIR}/src/lang/bog/dispatch.c\n    )\nendif()",
					Insertion: fmt.Sprintf("\n\nif(LANG_%[1]s)\n    list(APPEND PSND_LANG_SOURCES\n        ${PSND_ROOT_DIR}/src/lang/%[2]s/repl.c\n        ${PSND_ROOT_DIR}/src/lang/%[2]s/dispatch.c\n    )\nendif()",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("src/lang/%s/repl.c", v.Lower),
				},
			},
		},
		{
			Path: TestsRegistryPath,
			Records: []Record{
				{
					Anchor: "if(LANG_BOG)\n    add_subdirectory(${PSND_ROOT_DIR}/tests/bog ${CMAKE_BINARY_DIR}/tests/bog)\nendif()",
					Insertion: fmt.Sprintf("\n\nif(LANG_%[1]s)\n    add_subdirectory(${PSND_ROOT_DIR}/tests/%[2]s ${CMAKE_BINARY_DIR}/tests/%[2]s)\nendif()",
						v.Upper, v.Lower),
					Guard: fmt.Sprintf("tests/%s)", v.Lower),
				},
			},
		},
	}
}
