// Package emit renders a populated pins.Registry into the generated sources
// the firmware build consumes.
//
// # Artifacts
//
// Four artifacts are produced, always in this order:
//   - Definitions: the pins C file. For every board pin an AF array and a
//     PIN() object, followed by the cpu and board locals dict tables.
//   - Header: extern declarations for the pin objects and a pyb_pin_<name>
//     alias per board name.
//   - Qstr: the sorted identifier table (mux names, CPU names, board names).
//   - AFConst: one MP_ROM_INT row per supported mux name.
//
// The mux name (e.g. AF_PA3_UART0_TXD) is the key shared by the definitions,
// qstr and AF constant outputs; the AF() macro in the prefix file rebuilds
// it from the row's fields.
//
// # Conditional guards
//
// Entries of peripherals listed in the catalog's conditional table are wrapped
// in #if/#endif. With an empty table, which is what the shipped families use,
// no directive is written.
package emit
