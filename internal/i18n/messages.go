package i18n

var defaultMessages = `
	[analyzing_commits]
	other = "Analyzing commits..."

	[no_untagged_commits]
	other = "No untagged commits found. Everything after {{.Tag}} is already tagged."

	[no_tags_yet]
	other = "No semver tags found; the first tag will be {{.Version}}"

	[current_version]
	other = "Current version: {{.Version}}"

	[plan_header]
	other = "Tag plan ({{.Count}} assignments, base {{.Base}}):"

	[plan_validated]
	other = "Plan validated against the current repository state"

	[plan_conflict]
	other = "Plan rejected: {{.Reason}}"

	[applying_tags]
	other = "Applying tags..."

	[dry_run_notice]
	other = "Dry run: no tags were created or pushed"

	[tags_created]
	one = "{{.Count}} tag created"
	other = "{{.Count}} tags created"

	[tags_pushed]
	one = "{{.Count}} tag pushed"
	other = "{{.Count}} tags pushed"

	[tags_failed]
	one = "{{.Count}} tag failed"
	other = "{{.Count}} tags failed"

	[classifying_commit]
	other = "Classifying {{.Hash}}..."

	[classification_fallback]
	other = "Classification unavailable for {{.Hash}}; falling back to patch"

	[scanning_duplicates]
	other = "Scanning for duplicate tags..."

	[no_duplicates]
	other = "No commits with duplicate version tags"

	[duplicate_group]
	one = "Commit {{.Hash}} has {{.Count}} version tag; keeping {{.Survivor}}"
	other = "Commit {{.Hash}} has {{.Count}} version tags; keeping {{.Survivor}}"

	[tags_deleted_local]
	one = "{{.Count}} local tag deleted"
	other = "{{.Count}} local tags deleted"

	[tags_deleted_remote]
	one = "{{.Count}} remote tag deleted"
	other = "{{.Count}} remote tags deleted"

	[fetching_tags]
	other = "Fetching tags from remote..."

	[tags_synced]
	one = "{{.Count}} new tag fetched"
	other = "{{.Count}} new tags fetched"

	[tag_list_header]
	one = "{{.Count}} tag in {{.Scope}}"
	other = "{{.Count}} tags in {{.Scope}}"

	[pushing_tags]
	other = "Pushing tags to remote..."

	[syncing_releases]
	other = "Syncing releases with GitHub..."

	[releases_created]
	one = "{{.Count}} release created"
	other = "{{.Count}} releases created"

	[releases_up_to_date]
	other = "All tags already have releases"

	[confirm_apply]
	other = "Create these tags? [y/N]:"

	[confirm_delete]
	other = "Delete these tags? [y/N]:"

	[operation_cancelled]
	other = "Operation cancelled"

	[config_initialized]
	other = "Configuration initialized at {{.Path}}"

	[config_saved]
	other = "Configuration saved"

	[current_config]
	other = "Current configuration"

	[ui_error.try_suggestion]
	other = "💡 Try: "
	`

var spanishMessages = `
	[analyzing_commits]
	other = "Analizando commits..."

	[no_untagged_commits]
	other = "No hay commits sin etiquetar. Todo después de {{.Tag}} ya está etiquetado."

	[no_tags_yet]
	other = "No se encontraron tags semver; el primer tag será {{.Version}}"

	[current_version]
	other = "Versión actual: {{.Version}}"

	[plan_header]
	other = "Plan de tags ({{.Count}} asignaciones, base {{.Base}}):"

	[plan_validated]
	other = "Plan validado contra el estado actual del repositorio"

	[plan_conflict]
	other = "Plan rechazado: {{.Reason}}"

	[applying_tags]
	other = "Aplicando tags..."

	[dry_run_notice]
	other = "Simulación: no se crearon ni enviaron tags"

	[tags_created]
	one = "{{.Count}} tag creado"
	other = "{{.Count}} tags creados"

	[tags_pushed]
	one = "{{.Count}} tag enviado"
	other = "{{.Count}} tags enviados"

	[tags_failed]
	one = "{{.Count}} tag falló"
	other = "{{.Count}} tags fallaron"

	[classifying_commit]
	other = "Clasificando {{.Hash}}..."

	[classification_fallback]
	other = "Clasificación no disponible para {{.Hash}}; usando patch por defecto"

	[scanning_duplicates]
	other = "Buscando tags duplicados..."

	[no_duplicates]
	other = "Ningún commit tiene tags de versión duplicados"

	[duplicate_group]
	one = "El commit {{.Hash}} tiene {{.Count}} tag de versión; se conserva {{.Survivor}}"
	other = "El commit {{.Hash}} tiene {{.Count}} tags de versión; se conserva {{.Survivor}}"

	[tags_deleted_local]
	one = "{{.Count}} tag local eliminado"
	other = "{{.Count}} tags locales eliminados"

	[tags_deleted_remote]
	one = "{{.Count}} tag remoto eliminado"
	other = "{{.Count}} tags remotos eliminados"

	[fetching_tags]
	other = "Descargando tags del remoto..."

	[tags_synced]
	one = "{{.Count}} tag nuevo descargado"
	other = "{{.Count}} tags nuevos descargados"

	[tag_list_header]
	one = "{{.Count}} tag en {{.Scope}}"
	other = "{{.Count}} tags en {{.Scope}}"

	[pushing_tags]
	other = "Enviando tags al remoto..."

	[syncing_releases]
	other = "Sincronizando releases con GitHub..."

	[releases_created]
	one = "{{.Count}} release creado"
	other = "{{.Count}} releases creados"

	[releases_up_to_date]
	other = "Todos los tags ya tienen release"

	[confirm_apply]
	other = "¿Crear estos tags? [y/N]:"

	[confirm_delete]
	other = "¿Eliminar estos tags? [y/N]:"

	[operation_cancelled]
	other = "Operación cancelada"

	[config_initialized]
	other = "Configuración inicializada en {{.Path}}"

	[config_saved]
	other = "Configuración guardada"

	[current_config]
	other = "Configuración actual"

	[ui_error.try_suggestion]
	other = "💡 Prueba: "
	`
