package cli

import (
	"context"
	"fmt"

	"cookenu/internal/client/api"
)

func (a *App) Signup(ctx context.Context) error {
	nickname, err := GetSimpleText(a.reader, "Enter nickname", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Signup(ctx, nickname, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, you are logged in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter e-mail", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	a.printUser(user)
	return nil
}

func (a *App) Users(ctx context.Context, term string) error {
	users, err := a.api.ListUsers(ctx, term)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for i := range users {
		a.printUser(&users[i])
	}
	return nil
}

func (a *App) Recipes(ctx context.Context, term string) error {
	recipes, err := a.api.ListRecipes(ctx, term)
	if err != nil {
		return err
	}
	a.printRecipes(recipes)
	return nil
}

func (a *App) MyRecipes(ctx context.Context) error {
	recipes, err := a.api.MyRecipes(ctx)
	if err != nil {
		return err
	}
	a.printRecipes(recipes)
	return nil
}

func (a *App) AddRecipe(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	recipe, err := a.api.CreateRecipe(ctx, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created recipe %s\n", recipe.ID)
	return nil
}

func (a *App) EditRecipe(ctx context.Context, id string) error {
	title, err := GetSimpleText(a.reader, "Enter new title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter new description (empty to keep)", a.out)
	if err != nil {
		return err
	}

	recipe, err := a.api.EditRecipe(ctx, id, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated recipe %s\n", recipe.ID)
	return nil
}

func (a *App) DeleteRecipe(ctx context.Context, id string) error {
	if err := a.api.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Recipe deleted.")
	return nil
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	if err := a.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) printUser(u *api.User) {
	fmt.Fprintf(a.out, "%s  %s  <%s>\n", u.ID, u.Nickname, u.Email)
}

func (a *App) printRecipes(recipes []api.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(a.out, "No recipes found.")
		return
	}
	for _, r := range recipes {
		fmt.Fprintf(a.out, "%s  %s (by %s, updated %s)\n",
			r.ID, r.Title, r.CreatorID, r.UpdatedAt.Format("2006-01-02"))
		fmt.Fprintf(a.out, "    %s\n", r.Description)
	}
}
