// Package testutil provides test doubles for the provisioning workflow:
// a recording fake command runner and a scripted prompter, so end-to-end
// scenarios run without a terminal or external tools.
package testutil
